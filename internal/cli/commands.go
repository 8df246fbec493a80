package cli

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/clinic-scheduler/internal/app"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// list
// ======================================================

func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var date, month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		Long:  "List every appointment in booking order, or one day (--date) or month (--month YYYY-MM) ordered by start.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootOpts, func(a *app.App) error {
				var (
					items []dto.AppointmentListDTO
					err   error
				)
				switch {
				case date != "":
					items, err = a.List.ByDate(date)
				case month != "":
					t, perr := time.Parse("2006-01", month)
					if perr != nil {
						return fmt.Errorf("invalid month %q: want YYYY-MM", month)
					}
					items, err = a.List.ByMonth(t.Year(), int(t.Month()))
				default:
					items = a.List.All()
				}
				if err != nil {
					return err
				}

				return newFormatter(rootOpts, cmd.OutOrStdout()).Emit(items, func(w io.Writer) {
					for _, it := range items {
						writeAppointment(w, domain.Appointment{
							ID: it.ID, Date: it.Date, StartTime: it.StartTime, EndTime: it.EndTime, Description: it.Description,
						})
					}
					fmt.Fprintf(w, "%d appointment(s)\n", len(items))
				})
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "only this day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&month, "month", "", "only this month (YYYY-MM)")
	cmd.MarkFlagsMutuallyExclusive("date", "month")
	return cmd
}

// ======================================================
// check
// ======================================================

func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <date> <start> <end>",
		Short: "Report whether a slot is free",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootOpts, func(a *app.App) error {
				free, err := a.Check.Execute(ucAppointment.SlotInput{
					Date: args[0], StartTime: args[1], EndTime: args[2],
				})
				if err != nil {
					return err
				}
				return newFormatter(rootOpts, cmd.OutOrStdout()).Emit(
					map[string]bool{"available": free},
					func(w io.Writer) {
						if free {
							fmt.Fprintln(w, "available")
						} else {
							fmt.Fprintln(w, "taken")
						}
					},
				)
			})
		},
	}
}

// ======================================================
// suggest
// ======================================================

func NewSuggestCommand(rootOpts *RootOptions) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "suggest <date>",
		Short: "Print alternative slots for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootOpts, func(a *app.App) error {
				date, err := ucAppointment.ParseDate(args[0])
				if err != nil {
					return err
				}
				items := slices.Collect(a.Suggester.Suggest(a.Store.All(), date, description))
				if items == nil {
					items = []domain.Appointment{}
				}
				return newFormatter(rootOpts, cmd.OutOrStdout()).Emit(items, func(w io.Writer) {
					if len(items) == 0 {
						fmt.Fprintln(w, "no free slot within the horizon")
					}
					for _, ap := range items {
						writeAppointment(w, ap)
					}
				})
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "description copied to each suggestion")
	return cmd
}

// ======================================================
// availability
// ======================================================

func NewAvailabilityCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "availability <date>",
		Short: "List the free slots of a business day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootOpts, func(a *app.App) error {
				date, slots, err := a.Availability.Execute(args[0])
				if err != nil {
					return err
				}
				return newFormatter(rootOpts, cmd.OutOrStdout()).Emit(
					map[string]any{"date": date, "slots": slots},
					func(w io.Writer) {
						for _, s := range slots {
							fmt.Fprintf(w, "%s %s-%s\n", date, s.Start, s.End)
						}
						fmt.Fprintf(w, "%d free slot(s)\n", len(slots))
					},
				)
			})
		},
	}
}

// ======================================================
// book
// ======================================================

func NewBookCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		description string
		accept      int
	)

	cmd := &cobra.Command{
		Use:   "book <date> <start> <end>",
		Short: "Book an appointment",
		Long: `Book an appointment. When the slot is taken the suggestions are printed
and the booking session is closed, unless --accept picks one of them (1-based).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootOpts, func(a *app.App) error {
				ctx := cmd.Context()
				out, err := a.Book.Execute(ctx, ucAppointment.BookAppointmentInput{
					Date: args[0], StartTime: args[1], EndTime: args[2], Description: description,
				})
				if err != nil {
					return err
				}

				f := newFormatter(rootOpts, cmd.OutOrStdout())
				if out.State == domain.StateAccepted {
					return f.Emit(out.Appointment, func(w io.Writer) {
						fmt.Fprint(w, "booked ")
						writeAppointment(w, *out.Appointment)
					})
				}

				if accept < 1 || accept > len(out.Suggestions) {
					if err := a.Reject.Execute(ctx, out.BookingID); err != nil {
						return err
					}
					return f.Emit(out.Suggestions, func(w io.Writer) {
						fmt.Fprintln(w, "slot taken, suggestions:")
						for i, ap := range out.Suggestions {
							fmt.Fprintf(w, "%d) ", i+1)
							writeAppointment(w, ap)
						}
					})
				}

				chosen, err := a.Accept.Execute(ctx, out.BookingID, out.Suggestions[accept-1].ID)
				if err != nil {
					return err
				}
				return f.Emit(chosen, func(w io.Writer) {
					fmt.Fprint(w, "booked suggestion ")
					writeAppointment(w, *chosen)
				})
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "free text")
	cmd.Flags().IntVar(&accept, "accept", 0, "accept the n-th suggestion if the slot is taken")
	return cmd
}

// ======================================================
// token
// ======================================================

func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		secret  string
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				return fmt.Errorf("--secret is required")
			}
			tok, err := middleware.IssueToken(secret, subject, ttl)
			if err != nil {
				return err
			}
			return newFormatter(rootOpts, cmd.OutOrStdout()).Emit(
				map[string]string{"token": tok},
				func(w io.Writer) { fmt.Fprintln(w, tok) },
			)
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "JWT_SECRET of the server")
	cmd.Flags().StringVar(&subject, "subject", "clinicctl", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
