package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"visitas360/internal/apiclient"
	"visitas360/internal/auth"
	"visitas360/internal/config"
	"visitas360/internal/domain"
	"visitas360/internal/geo"
	"visitas360/internal/mockapi"
	"visitas360/internal/refdata"
	"visitas360/internal/session"
	"visitas360/internal/snapshot"
	"visitas360/internal/tracking"
	"visitas360/internal/visitsapi"
)

var rootCmd = &cobra.Command{
	Use:   "v360",
	Short: "Visitas360 CLI",
	Long: `Visitas360 tracks field operations for municipal public-works projects:
scheduling site visits to project units, recording citizen requirements
raised during those visits, and driving each requirement through its
resolution workflow until the managing agencies close it out.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		workspace := viper.GetString("workspace")
		if _, err := snapshot.EnsureWorkspace(workspace); err != nil {
			return err
		}
		return nil
	},
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("VISITAS360")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().String("author", "", "author recorded on history entries")
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("author", rootCmd.PersistentFlags().Lookup("author"))
}

func registerCommands() {
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(registerCmd())
	rootCmd.AddCommand(googleLoginCmd())
	rootCmd.AddCommand(changePasswordCmd())
	rootCmd.AddCommand(workloadIdentityCmd())
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(territoryCmd())
	rootCmd.AddCommand(visitCmd())
	rootCmd.AddCommand(reqCmd())
	rootCmd.AddCommand(boardCmd())
	rootCmd.AddCommand(unitsCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(attendanceCmd())
	rootCmd.AddCommand(submitCmd())
	rootCmd.AddCommand(serveMockCmd())
}

/* ---- config ---- */

func configCmd() *cobra.Command {
	cfg := &cobra.Command{Use: "config", Short: "Manage CLI configuration"}
	cfg.AddCommand(configInitCmd())
	cfg.AddCommand(configShowCmd())
	return cfg
}

func configInitCmd() *cobra.Command {
	var visitsURL, projectsURL string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default visitas360.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path(viper.GetString("workspace"))
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			content := config.GenerateDefault(visitsURL, projectsURL)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return err
			}
			fmt.Println("wrote", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&visitsURL, "visits-url", "http://127.0.0.1:8686", "auth/visits service URL")
	cmd.Flags().StringVar(&projectsURL, "projects-url", "http://127.0.0.1:8686", "project-units service URL")
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return printJSONOrTable(cfg)
		},
	}
}

/* ---- auth ---- */

func loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and validate the session with the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGateway()
			if err != nil {
				return err
			}
			if err := g.Login(cmd.Context(), email, password); err != nil {
				st := g.Sessions.State()
				if st.Err != "" {
					return errors.New(st.Err)
				}
				return err
			}
			st := g.Sessions.State()
			fmt.Printf("Sesión iniciada como %s (%s)\n", st.Profile.Email, st.Profile.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGateway()
			if err != nil {
				return err
			}
			g.Logout(cmd.Context())
			fmt.Println("Sesión cerrada")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGateway()
			if err != nil {
				return err
			}
			if !g.Sessions.Restore() {
				return errors.New("no hay sesión activa; ejecute v360 login")
			}
			return printJSONOrTable(g.Sessions.State().Profile)
		},
	}
}

func registerCmd() *cobra.Command {
	var p domain.RegisterUserPayload
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a backend account",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGateway()
			if err != nil {
				return err
			}
			if err := g.RegisterUser(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Println("Usuario registrado")
			return nil
		},
	}
	cmd.Flags().StringVar(&p.Email, "email", "", "account email")
	cmd.Flags().StringVar(&p.Password, "password", "", "account password")
	cmd.Flags().StringVar(&p.FullName, "full-name", "", "full name")
	cmd.Flags().StringVar(&p.Cellphone, "cellphone", "", "cellphone")
	cmd.Flags().StringVar(&p.AgencyName, "agency", "", "managing agency name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func googleLoginCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "google-login",
		Short: "Sign in with a Google token",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGateway()
			if err != nil {
				return err
			}
			if err := g.GoogleAuth(cmd.Context(), token); err != nil {
				st := g.Sessions.State()
				if st.Err != "" {
					return errors.New(st.Err)
				}
				return err
			}
			st := g.Sessions.State()
			fmt.Printf("Sesión iniciada como %s (%s)\n", st.Profile.Email, st.Profile.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Google identity token")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func changePasswordCmd() *cobra.Command {
	var p domain.ChangePasswordPayload
	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change an account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := authenticatedGateway()
			if err != nil {
				return err
			}
			if err := g.ChangePassword(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Println("Contraseña actualizada")
			return nil
		},
	}
	cmd.Flags().StringVar(&p.UID, "uid", "", "account uid")
	cmd.Flags().StringVar(&p.NewPassword, "new-password", "", "new password")
	_ = cmd.MarkFlagRequired("uid")
	_ = cmd.MarkFlagRequired("new-password")
	return cmd
}

func workloadIdentityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workload-identity",
		Short: "Show Workload Identity Federation status",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := authenticatedGateway()
			if err != nil {
				return err
			}
			status, err := g.WorkloadIdentityStatus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(status)
			return nil
		},
	}
}

/* ---- reference data ---- */

func catalogCmd() *cobra.Command {
	cat := &cobra.Command{Use: "catalog", Short: "Reference catalog of agencies, collaborators and liaisons"}
	cat.AddCommand(&cobra.Command{
		Use:   "agencies",
		Short: "List managing agencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := refdata.NewCatalog()
			if viper.GetBool("json") {
				return printJSON(c.Agencies())
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Name", "Acronym"})
			for _, a := range c.Agencies() {
				tw.AppendRow(table.Row{a.ID, a.Name, a.Acronym})
			}
			tw.Render()
			return nil
		},
	})
	cat.AddCommand(&cobra.Command{
		Use:   "collaborators",
		Short: "List field collaborators",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := refdata.NewCatalog()
			if viper.GetBool("json") {
				return printJSON(c.Collaborators())
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Name", "Role", "Agency"})
			for _, co := range c.Collaborators() {
				tw.AppendRow(table.Row{co.ID, co.Name, co.Role, co.Agency})
			}
			tw.Render()
			return nil
		},
	})
	var agencyID string
	liaisons := &cobra.Command{
		Use:   "liaisons",
		Short: "List agency liaisons",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := refdata.NewCatalog()
			items := c.Liaisons()
			if agencyID != "" {
				items = c.ActiveLiaisons(agencyID)
			}
			if viper.GetBool("json") {
				return printJSON(items)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Name", "Agency", "Department", "Active"})
			for _, l := range items {
				tw.AppendRow(table.Row{l.ID, l.Name, l.AgencyName, l.Department, l.Active})
			}
			tw.Render()
			return nil
		},
	}
	liaisons.Flags().StringVar(&agencyID, "agency", "", "agency id (active liaisons only)")
	cat.AddCommand(liaisons)
	return cat
}

func territoryCmd() *cobra.Command {
	ter := &cobra.Command{Use: "territory", Short: "Comunas and corregimientos"}
	ter.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List comunas and corregimientos",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := refdata.Territories()
			if viper.GetBool("json") {
				return printJSON(items)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Name", "Kind", "Neighborhoods"})
			for _, t := range items {
				tw.AppendRow(table.Row{t.Name, t.Kind, len(t.Neighborhoods)})
			}
			tw.Render()
			return nil
		},
	})
	ter.AddCommand(&cobra.Command{
		Use:   "neighborhoods <territory>",
		Short: "List barrios/veredas of one territory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, ok := refdata.Neighborhoods(args[0])
			if !ok {
				return fmt.Errorf("territorio %q no encontrado", args[0])
			}
			return printJSONOrTable(names)
		},
	})
	return ter
}

/* ---- visits ---- */

func visitCmd() *cobra.Command {
	visit := &cobra.Command{Use: "visit", Short: "Schedule and track site visits"}
	visit.AddCommand(visitScheduleCmd())
	visit.AddCommand(visitListCmd())
	visit.AddCommand(visitShowCmd())
	visit.AddCommand(visitStatusCmd())
	return visit
}

func visitScheduleCmd() *cobra.Command {
	var unit domain.ProjectUnit
	var date, start, end, notes string
	var collaborators []string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a visit to a project unit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				v := ts.ScheduleVisit(unit, date, start, end, collaborators, notes)
				fmt.Println("Visita programada:", v.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&unit.UPID, "upid", "", "project unit id")
	cmd.Flags().StringVar(&unit.Name, "name", "", "project unit name")
	cmd.Flags().StringVar(&unit.Detail, "detail", "", "project unit detail")
	cmd.Flags().StringVar(&unit.Address, "address", "", "project unit address")
	cmd.Flags().StringVar(&date, "date", "", "visit date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "end time (HH:MM)")
	cmd.Flags().StringArrayVar(&collaborators, "collaborator", []string{}, "collaborator id (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "visit notes")
	_ = cmd.MarkFlagRequired("upid")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func visitListCmd() *cobra.Command {
	var activeOnly bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visits",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				st := ts.State()
				visits := st.Visits
				if activeOnly {
					visits = st.ActiveVisits()
				}
				if viper.GetBool("json") {
					return printJSON(visits)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "UPID", "Date", "Status", "Collaborators"})
				for _, v := range visits {
					tw.AppendRow(table.Row{v.ID, v.UPID, v.Date, v.Status, len(v.Collaborators)})
				}
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only scheduled or in-progress visits")
	return cmd
}

func visitShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <visit-id>",
		Short: "Show one visit and its requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				v, ok := ts.Visit(args[0])
				if !ok {
					return fmt.Errorf("visita %q no encontrada", args[0])
				}
				if viper.GetBool("json") {
					return printJSON(map[string]any{
						"visita":         v,
						"requerimientos": ts.State().RequirementsForVisit(v.ID),
					})
				}
				fmt.Printf("%s  %s  %s  [%s]\n", v.ID, v.UPID, v.Date, v.Status)
				fmt.Println(v.Unit.Name, "-", v.Unit.Detail, "-", v.Unit.Address)
				for _, r := range ts.State().RequirementsForVisit(v.ID) {
					fmt.Printf("  %s [%s %d%%] %s\n", r.ID, r.Status, r.Progress, r.Description)
				}
				return nil
			})
		},
	}
}

func visitStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <visit-id> <status>",
		Short: "Set visit status (programada|en-curso|finalizada|cancelada)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.VisitStatus(args[1])
			switch status {
			case domain.VisitScheduled, domain.VisitInProgress, domain.VisitCompleted, domain.VisitCancelled:
			default:
				return fmt.Errorf("estado de visita %q no válido", args[1])
			}
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				if _, ok := ts.Visit(args[0]); !ok {
					return fmt.Errorf("visita %q no encontrada", args[0])
				}
				ts.SetVisitStatus(args[0], status)
				fmt.Println("Estado actualizado:", args[0], "->", status)
				return nil
			})
		},
	}
}

/* ---- requirements ---- */

func reqCmd() *cobra.Command {
	req := &cobra.Command{Use: "req", Short: "Citizen requirements raised during visits"}
	req.AddCommand(reqAddCmd())
	req.AddCommand(reqListCmd())
	req.AddCommand(reqShowCmd())
	req.AddCommand(reqStatusCmd())
	req.AddCommand(reqAssignHandlerCmd())
	req.AddCommand(reqAssignLiaisonCmd())
	req.AddCommand(reqProposeDateCmd())
	req.AddCommand(reqFilingCmd())
	req.AddCommand(reqCancelCmd())
	return req
}

func reqAddCmd() *cobra.Command {
	var opts tracking.RequirementOptions
	var priority string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new citizen requirement",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Priority = domain.Priority(priority)
			opts.Author = viper.GetString("author")
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				if _, ok := ts.Visit(opts.VisitID); !ok {
					return fmt.Errorf("visita %q no encontrada", opts.VisitID)
				}
				r := ts.AddRequirement(opts)
				fmt.Println("Requerimiento registrado:", r.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&opts.VisitID, "visit", "", "visit id")
	cmd.Flags().StringVar(&opts.Requester.FullName, "requester-name", "", "requester full name")
	cmd.Flags().StringVar(&opts.Requester.NationalID, "requester-cedula", "", "requester national id")
	cmd.Flags().StringVar(&opts.Requester.Phone, "requester-phone", "", "requester phone")
	cmd.Flags().StringVar(&opts.Requester.Email, "requester-email", "", "requester email")
	cmd.Flags().StringVar(&opts.Requester.Neighborhood, "neighborhood", "", "barrio/vereda")
	cmd.Flags().StringVar(&opts.Requester.District, "district", "", "comuna/corregimiento")
	cmd.Flags().StringArrayVar(&opts.Agencies, "agency", []string{}, "managing agency name (repeatable)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "requirement description")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "field notes")
	cmd.Flags().StringVar(&opts.Address, "req-address", "", "requirement address")
	cmd.Flags().StringVar(&opts.Latitude, "lat", "", "latitude")
	cmd.Flags().StringVar(&opts.Longitude, "lng", "", "longitude")
	cmd.Flags().StringArrayVar(&opts.Photos, "photo", []string{}, "photo URL (repeatable)")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "baja|media|alta|urgente")
	_ = cmd.MarkFlagRequired("visit")
	_ = cmd.MarkFlagRequired("requester-name")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func reqListCmd() *cobra.Command {
	var visitID, status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				st := ts.State()
				reqs := st.Requirements
				if visitID != "" {
					reqs = st.RequirementsForVisit(visitID)
				}
				if status != "" {
					s := domain.RequirementStatus(status)
					if !s.Valid() {
						return fmt.Errorf("estado %q no válido", status)
					}
					reqs = st.ByStatus()[s]
				}
				if viper.GetBool("json") {
					return printJSON(reqs)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Visit", "Status", "Progress", "Priority", "Agencies"})
				for _, r := range reqs {
					tw.AppendRow(table.Row{r.ID, r.VisitID, r.Status, fmt.Sprintf("%d%%", r.Progress), r.Priority, strings.Join(r.Agencies, ", ")})
				}
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&visitID, "visit", "", "filter by visit id")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	return cmd
}

func reqShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <req-id>",
		Short: "Show one requirement with its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				r, ok := ts.Requirement(args[0])
				if !ok {
					return fmt.Errorf("requerimiento %q no encontrado", args[0])
				}
				if viper.GetBool("json") {
					return printJSON(r)
				}
				fmt.Printf("%s [%s %d%% %s] visita=%s\n", r.ID, r.Status, r.Progress, r.Priority, r.VisitID)
				fmt.Println("Solicitante:", r.Requester.FullName, "-", r.Requester.Phone)
				fmt.Println("Entidades:", strings.Join(r.Agencies, ", "))
				fmt.Println(r.Description)
				for _, h := range r.History {
					fmt.Printf("  %s  %s -> %s (%d%%)  %s: %s\n", h.Date, h.PrevStatus, h.NewStatus, h.Progress, h.Author, h.Description)
				}
				return nil
			})
		},
	}
}

func reqStatusCmd() *cobra.Command {
	var description string
	var progress int
	cmd := &cobra.Command{
		Use:   "status <req-id> <status>",
		Short: "Move a requirement to a new workflow status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.RequirementStatus(args[1])
			if !status.Valid() {
				return fmt.Errorf("estado %q no válido", args[1])
			}
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				if _, ok := ts.Requirement(args[0]); !ok {
					return fmt.Errorf("requerimiento %q no encontrado", args[0])
				}
				ts.ChangeRequirementStatus(args[0], status, description, author(), progress)
				fmt.Println("Estado actualizado:", args[0], "->", status)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "what was done")
	cmd.Flags().IntVar(&progress, "progress", 0, "progress percentage")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func reqAssignHandlerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign-handler <req-id> <name>",
		Short: "Set the case handler",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				ts.AssignHandler(args[0], args[1])
				fmt.Println("Encargado asignado")
				return nil
			})
		},
	}
}

func reqAssignLiaisonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign-liaison <req-id> <liaison-id>",
		Short: "Assign an agency liaison from the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := refdata.NewCatalog()
			l, ok := c.Liaison(args[1])
			if !ok {
				return fmt.Errorf("enlace %q no encontrado", args[1])
			}
			if !l.Active {
				return fmt.Errorf("enlace %q está inactivo", args[1])
			}
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				ts.AssignLiaison(args[0], l.ID, l.Name)
				fmt.Println("Enlace asignado:", l.Name)
				return nil
			})
		},
	}
}

func reqProposeDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "propose-date <req-id> <date>",
		Short: "Record the proposed resolution date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				ts.SetProposedResolutionDate(args[0], args[1])
				fmt.Println("Fecha propuesta registrada")
				return nil
			})
		},
	}
}

func reqFilingCmd() *cobra.Command {
	var number, date, docURL, docName string
	cmd := &cobra.Command{
		Use:   "filing <req-id>",
		Short: "Record the document-management filing reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				ts.RecordFilingReference(args[0], number, date, docURL, docName)
				fmt.Println("Radicado registrado:", number)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&number, "number", "", "filing number")
	cmd.Flags().StringVar(&date, "date", "", "filing date")
	cmd.Flags().StringVar(&docURL, "doc-url", "", "petition document URL")
	cmd.Flags().StringVar(&docName, "doc-name", "", "petition document name")
	_ = cmd.MarkFlagRequired("number")
	return cmd
}

func reqCancelCmd() *cobra.Command {
	var reason, docURL, docName string
	cmd := &cobra.Command{
		Use:   "cancel <req-id>",
		Short: "Cancel a requirement with a reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				if _, ok := ts.Requirement(args[0]); !ok {
					return fmt.Errorf("requerimiento %q no encontrado", args[0])
				}
				ts.CancelRequirement(args[0], reason, author(), docURL, docName)
				fmt.Println("Requerimiento cancelado:", args[0])
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "cancellation reason")
	cmd.Flags().StringVar(&docURL, "doc-url", "", "official document URL")
	cmd.Flags().StringVar(&docName, "doc-name", "", "official document name")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func boardCmd() *cobra.Command {
	var byAgency bool
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Kanban view of requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracking(cmd.Context(), func(ts *tracking.Store) error {
				st := ts.State()
				if byAgency {
					grouped := st.ByAgency()
					if viper.GetBool("json") {
						return printJSON(grouped)
					}
					tw := table.NewWriter()
					tw.SetOutputMirror(os.Stdout)
					tw.AppendHeader(table.Row{"Agency", "Count", "Requirements"})
					for agency, reqs := range grouped {
						tw.AppendRow(table.Row{agency, len(reqs), joinIDs(reqs)})
					}
					tw.Render()
					return nil
				}
				grouped := st.ByStatus()
				if viper.GetBool("json") {
					return printJSON(grouped)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"Status", "Count", "Requirements"})
				for _, status := range domain.RequirementStatuses {
					reqs := grouped[status]
					tw.AppendRow(table.Row{status, len(reqs), joinIDs(reqs)})
				}
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&byAgency, "by-agency", false, "group by managing agency instead of status")
	return cmd
}

func joinIDs(reqs []domain.Requirement) string {
	ids := make([]string, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID
	}
	return strings.Join(ids, ", ")
}

/* ---- backend operations ---- */

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List project units available for visits",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd.Context(), func(ctx context.Context, svc *visitsapi.Service) error {
				units, err := svc.ProjectUnits(ctx)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(units)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"UPID", "Name", "Intervention", "Status", "Progress", "Address"})
				for _, u := range units {
					tw.AppendRow(table.Row{u.UPID, u.Name, u.InterventionType, u.Status, u.Progress, u.Address})
				}
				tw.Render()
				return nil
			})
		},
	}
}

func reportCmd() *cobra.Command {
	rep := &cobra.Command{Use: "report", Short: "Operative group visit reports"}
	rep.AddCommand(reportRegisterCmd())
	rep.AddCommand(reportListCmd())
	rep.AddCommand(reportDeleteCmd())
	return rep
}

func reportRegisterCmd() *cobra.Command {
	var p domain.RegisterVisitPayload
	cmd := &cobra.Command{
		Use:   "register",
		Short: "File a visit report with the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd.Context(), func(ctx context.Context, svc *visitsapi.Service) error {
				resp, err := svc.RegisterVisit(ctx, p)
				if err != nil {
					return err
				}
				return printJSONOrTable(resp)
			})
		},
	}
	cmd.Flags().StringVar(&p.Name, "name", "", "project unit name")
	cmd.Flags().StringVar(&p.Detail, "detail", "", "project unit detail")
	cmd.Flags().StringVar(&p.Neighborhood, "neighborhood", "", "barrio/vereda")
	cmd.Flags().StringVar(&p.District, "district", "", "comuna/corregimiento")
	cmd.Flags().StringVar(&p.Date, "date", "", "visit date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func reportListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List filed visit reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd.Context(), func(ctx context.Context, svc *visitsapi.Service) error {
				reports, err := svc.Reports(ctx)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(reports)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Name", "District", "Date"})
				for _, r := range reports {
					tw.AppendRow(table.Row{r.ReportID, r.Name, r.District, r.Date})
				}
				tw.Render()
				return nil
			})
		},
	}
}

func reportDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <report-id>",
		Short: "Delete one filed report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("report id must be an integer: %w", err)
			}
			return withBackend(cmd.Context(), func(ctx context.Context, svc *visitsapi.Service) error {
				if err := svc.DeleteReport(ctx, id); err != nil {
					return err
				}
				fmt.Println("Reporte eliminado:", id)
				return nil
			})
		},
	}
}

func attendanceCmd() *cobra.Command {
	att := &cobra.Command{Use: "attendance", Short: "Register visit attendance with the backend"}
	att.AddCommand(attendanceDelegateCmd())
	att.AddCommand(attendanceCommunityCmd())
	return att
}

func attendanceDelegateCmd() *cobra.Command {
	var p domain.DelegateAttendancePayload
	var lat, lng float64
	cmd := &cobra.Command{
		Use:   "delegate",
		Short: "Register an institutional delegate's attendance",
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng")
			coords, ok, err := resolveCoords(cmd.Context(), explicit, lat, lng)
			if err != nil {
				return err
			}
			if ok {
				p.Latitude = formatCoord(coords.Latitude)
				p.Longitude = formatCoord(coords.Longitude)
			}
			return withBackend(cmd.Context(), func(ctx context.Context, svc *visitsapi.Service) error {
				if err := svc.RegisterDelegateAttendance(ctx, p); err != nil {
					return err
				}
				fmt.Println("Asistencia de delegado registrada")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&p.VID, "vid", "", "backend visit id")
	cmd.Flags().StringVar(&p.DelegateID, "delegate-id", "", "delegate id")
	cmd.Flags().StringVar(&p.FullName, "full-name", "", "full name")
	cmd.Flags().StringVar(&p.Role, "role", "", "role")
	cmd.Flags().StringVar(&p.AgencyName, "agency", "", "managing agency name")
	cmd.Flags().StringVar(&p.Phone, "phone", "", "phone")
	cmd.Flags().StringVar(&p.Email, "email", "", "email")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	_ = cmd.MarkFlagRequired("vid")
	_ = cmd.MarkFlagRequired("full-name")
	return cmd
}

func attendanceCommunityCmd() *cobra.Command {
	var p domain.CommunityAttendancePayload
	var lat, lng float64
	cmd := &cobra.Command{
		Use:   "community",
		Short: "Register a community member's attendance",
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng")
			coords, ok, err := resolveCoords(cmd.Context(), explicit, lat, lng)
			if err != nil {
				return err
			}
			if ok {
				p.Latitude = formatCoord(coords.Latitude)
				p.Longitude = formatCoord(coords.Longitude)
			}
			return withBackend(cmd.Context(), func(ctx context.Context, svc *visitsapi.Service) error {
				if err := svc.RegisterCommunityAttendance(ctx, p); err != nil {
					return err
				}
				fmt.Println("Asistencia de comunidad registrada")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&p.VID, "vid", "", "backend visit id")
	cmd.Flags().StringVar(&p.AttendeeID, "attendee-id", "", "attendee id")
	cmd.Flags().StringVar(&p.FullName, "full-name", "", "full name")
	cmd.Flags().StringVar(&p.Role, "role", "", "community role")
	cmd.Flags().StringVar(&p.Address, "address", "", "address")
	cmd.Flags().StringVar(&p.Neighborhood, "neighborhood", "", "barrio/vereda")
	cmd.Flags().StringVar(&p.District, "district", "", "comuna/corregimiento")
	cmd.Flags().StringVar(&p.Phone, "phone", "", "phone")
	cmd.Flags().StringVar(&p.Email, "email", "", "email")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	_ = cmd.MarkFlagRequired("vid")
	_ = cmd.MarkFlagRequired("full-name")
	return cmd
}

func submitCmd() *cobra.Command {
	var p domain.RequirementSubmission
	var voiceNotePath string
	var lat, lng float64
	cmd := &cobra.Command{
		Use:   "submit-requirement",
		Short: "Submit a requirement to the backend (multipart, optional voice note)",
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng")
			coords, ok, err := resolveCoords(cmd.Context(), explicit, lat, lng)
			if err != nil {
				return err
			}
			if ok {
				p.Latitude = formatCoord(coords.Latitude)
				p.Longitude = formatCoord(coords.Longitude)
			}
			return withBackend(cmd.Context(), func(ctx context.Context, svc *visitsapi.Service) error {
				var voice *os.File
				if voiceNotePath != "" {
					voice, err = os.Open(voiceNotePath)
					if err != nil {
						return err
					}
					defer voice.Close()
					p.VoiceNoteName = voice.Name()
				}
				if voice != nil {
					err = svc.RegisterRequirement(ctx, p, voice)
				} else {
					err = svc.RegisterRequirement(ctx, p, nil)
				}
				if err != nil {
					return err
				}
				fmt.Println("Requerimiento enviado al backend")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&p.VID, "vid", "", "backend visit id")
	cmd.Flags().StringVar(&p.RequesterAgency, "requester-agency", "", "requesting agency")
	cmd.Flags().StringVar(&p.RequesterName, "requester-name", "", "requester contact name")
	cmd.Flags().StringVar(&p.Requirement, "description", "", "requirement text")
	cmd.Flags().StringVar(&p.Notes, "notes", "", "observations")
	cmd.Flags().StringVar(&p.Address, "address", "", "address")
	cmd.Flags().StringVar(&p.Neighborhood, "neighborhood", "", "barrio/vereda")
	cmd.Flags().StringVar(&p.District, "district", "", "comuna/corregimiento")
	cmd.Flags().StringVar(&p.Phone, "phone", "", "phone")
	cmd.Flags().StringVar(&p.RequesterEmail, "email", "", "requester email")
	cmd.Flags().StringVar(&p.Assignees, "assignees", "", "assigned agencies (comma-separated)")
	cmd.Flags().StringVar(&voiceNotePath, "voice-note", "", "path to a voice-note file")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	_ = cmd.MarkFlagRequired("vid")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func serveMockCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve-mock",
		Short: "Start the local mock backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			secret := cfg.Auth.DevSecret
			if secret == "" {
				return errors.New("auth.dev_secret is required to serve the mock backend")
			}
			handler := mockapi.New(mockapi.Config{JWTSecret: secret})
			srv := &http.Server{Addr: addr, Handler: handler}
			go func() {
				<-cmd.Context().Done()
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()
			fmt.Printf("Serving mock backend on http://%s (OpenAPI at /openapi.json)\n", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8686", "listen address")
	return cmd
}

/* ---- helpers ---- */

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOptional(viper.GetString("workspace"))
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default("http://127.0.0.1:8686", "http://127.0.0.1:8686")
	}
	return cfg, nil
}

func buildGateway() (*auth.Gateway, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dataDir, err := snapshot.EnsureWorkspace(viper.GetString("workspace"))
	if err != nil {
		return nil, err
	}
	var provider auth.Provider
	if cfg.Auth.Provider == "dev" {
		provider = auth.NewDevProvider(cfg.Auth.DevSecret)
	}
	return &auth.Gateway{
		Provider: provider,
		Visits:   apiclient.New(cfg.Services.VisitsURL),
		Projects: apiclient.New(cfg.Services.ProjectsURL),
		Sessions: session.New(&session.FileStore{Dir: dataDir}),
	}, nil
}

func authenticatedGateway() (*auth.Gateway, error) {
	g, err := buildGateway()
	if err != nil {
		return nil, err
	}
	if !g.Sessions.Restore() {
		return nil, errors.New("no hay sesión activa; ejecute v360 login")
	}
	token := g.Sessions.State().Token
	g.Visits.SetToken(token)
	g.Projects.SetToken(token)
	return g, nil
}

func withBackend(ctx context.Context, fn func(context.Context, *visitsapi.Service) error) error {
	g, err := authenticatedGateway()
	if err != nil {
		return err
	}
	return fn(ctx, visitsapi.New(g.Visits, g.Projects))
}

// withTracking runs fn against the snapshot-backed working set. An empty
// snapshot starts from the reference seed; mutations are persisted back
// when fn succeeds.
func withTracking(ctx context.Context, fn func(*tracking.Store) error) error {
	workspace := viper.GetString("workspace")
	conn, err := snapshot.Open(snapshot.Config{Workspace: workspace})
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := snapshot.Migrate(conn); err != nil {
		return err
	}
	store := snapshot.NewStore(conn)
	ts := tracking.New(refdata.NewCatalog())
	empty, err := store.Empty(ctx)
	if err != nil {
		return err
	}
	if empty {
		ts.Load(tracking.SeedVisits(), tracking.SeedRequirements())
	} else {
		visits, reqs, err := store.Load(ctx)
		if err != nil {
			return err
		}
		ts.Load(visits, reqs)
	}
	if err := fn(ts); err != nil {
		return err
	}
	st := ts.State()
	return store.Save(ctx, st.Visits, st.Requirements)
}

func author() string {
	if a := viper.GetString("author"); a != "" {
		return a
	}
	return "Usuario actual"
}

// resolveCoords uses the flag values when either coordinate flag was
// set; otherwise it asks the locator, which on a headless CLI has no
// position source. ok reports whether a position was obtained, so an
// explicit 0,0 stays distinguishable from "no coordinates".
func resolveCoords(ctx context.Context, explicit bool, lat, lng float64) (geo.Coordinates, bool, error) {
	var locator geo.Locator = geo.Unavailable{}
	if explicit {
		locator = geo.Fixed{Coords: geo.Coordinates{Latitude: lat, Longitude: lng}}
	}
	coords, err := locator.CurrentPosition(ctx)
	if err != nil {
		var ge *geo.Error
		if errors.As(err, &ge) {
			fmt.Println(ge.Error(), "- continuando sin coordenadas")
			return geo.Coordinates{}, false, nil
		}
		return geo.Coordinates{}, false, err
	}
	return coords, true, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 8, 64)
}

func printJSONOrTable(v any) error {
	if viper.GetBool("json") {
		return printJSON(v)
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
