package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/kurocal/internal/config"
	"github.com/Simplici0/kurocal/internal/db"
	"github.com/Simplici0/kurocal/internal/migrations"
	"github.com/Simplici0/kurocal/internal/nutrition"
	"github.com/Simplici0/kurocal/internal/seed"
	"github.com/Simplici0/kurocal/internal/session"
	"github.com/Simplici0/kurocal/internal/wizard"
	"github.com/Simplici0/kurocal/web"
)

const purgeInterval = time.Hour

type server struct {
	db         *sql.DB
	sessions   *session.Store
	sessionTTL time.Duration
}

type baseViewData struct {
	ErrorMessage   string
	SuccessMessage string
}

type stepLink struct {
	Number int
	Title  string
	Active bool
	Done   bool
}

type profileForm struct {
	WeightKg  float64
	AgeYears  int
	AgeMonths int
	Neutered  bool
	BCS       int
	Pregnant  bool
	Lactating bool
}

type planForm struct {
	WetPercentage int
}

type stepViewData struct {
	baseViewData
	Step     wizard.Step
	Steps    []stepLink
	State    wizard.State
	Profile  profileForm
	Food     nutrition.FoodInput
	Plan     planForm
	Currency string
	Report   string
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	stats, err := seed.Run(context.Background(), database)
	if err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}
	if cfg.IsDev() {
		log.Printf("seed inserted %d rows", stats.Inserts)
	}

	srv := newServer(database, cfg.SessionTTL)
	go srv.purgeLoop(context.Background(), purgeInterval)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newServer(database *sql.DB, sessionTTL time.Duration) *server {
	return &server{
		db:         database,
		sessions:   session.NewStore(database, sessionTTL),
		sessionTTL: sessionTTL,
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))
	r.Get("/", s.handleHome)
	r.Get("/step/{n}", s.handleStepForm)
	r.Post("/step/{n}", s.handleStepSubmit)
	r.Post("/next", s.handleNext)
	r.Post("/back", s.handleBack)
	r.Post("/reset", s.handleReset)
	r.Get("/report.txt", s.handleReportText)
	return r
}

func (s *server) purgeLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		if n, err := s.sessions.PurgeExpired(ctx); err != nil {
			log.Printf("purge wizard sessions: %v", err)
		} else if n > 0 {
			log.Printf("purged %d expired wizard sessions", n)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r, s.sessionTTL)
	state, err := s.sessions.Load(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}
	redirectToStep(w, r, state.CurrentStep())
}

func (s *server) handleStepForm(w http.ResponseWriter, r *http.Request) {
	step, ok := parseStep(chi.URLParam(r, "n"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	id := sessionID(w, r, s.sessionTTL)
	state, err := s.sessions.Load(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}
	if step != state.CurrentStep() {
		redirectToStep(w, r, state.CurrentStep())
		return
	}

	data, err := s.stepView(r.Context(), state)
	if err != nil {
		http.Error(w, "failed to load settings", http.StatusInternalServerError)
		return
	}
	data.ErrorMessage = r.URL.Query().Get("error")
	s.renderTemplate(w, http.StatusOK, stepTemplate(step), data)
}

func (s *server) handleStepSubmit(w http.ResponseWriter, r *http.Request) {
	step, ok := parseStep(chi.URLParam(r, "n"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id := sessionID(w, r, s.sessionTTL)
	state, err := s.sessions.Load(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}

	next, submitErr := submitStep(state, step, r)
	if submitErr != nil {
		data, err := s.stepView(r.Context(), state)
		if err != nil {
			http.Error(w, "failed to load settings", http.StatusInternalServerError)
			return
		}
		data.ErrorMessage = submitMessage(submitErr)
		if step == state.CurrentStep() {
			overlayForm(&data, step, r)
		}
		s.renderTemplate(w, http.StatusBadRequest, stepTemplate(state.CurrentStep()), data)
		return
	}

	if err := s.sessions.Save(r.Context(), id, next); err != nil {
		http.Error(w, "failed to save session", http.StatusInternalServerError)
		return
	}

	data, err := s.stepView(r.Context(), next)
	if err != nil {
		http.Error(w, "failed to load settings", http.StatusInternalServerError)
		return
	}
	data.SuccessMessage = "Calculated. Review the results and continue when ready."
	s.renderTemplate(w, http.StatusOK, stepTemplate(next.CurrentStep()), data)
}

func (s *server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, func(state wizard.State) (wizard.State, error) {
		return state.Advance()
	})
}

func (s *server) handleBack(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, func(state wizard.State) (wizard.State, error) {
		return state.Back(), nil
	})
}

func (s *server) transition(w http.ResponseWriter, r *http.Request, move func(wizard.State) (wizard.State, error)) {
	id := sessionID(w, r, s.sessionTTL)
	state, err := s.sessions.Load(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}

	next, moveErr := move(state)
	if moveErr != nil {
		http.Redirect(w, r, stepPath(state.CurrentStep())+"?error="+url.QueryEscape(wizard.Message(moveErr)), http.StatusSeeOther)
		return
	}

	if err := s.sessions.Save(r.Context(), id, next); err != nil {
		http.Error(w, "failed to save session", http.StatusInternalServerError)
		return
	}
	redirectToStep(w, r, next.CurrentStep())
}

func (s *server) handleReset(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && session.ValidID(cookie.Value) {
		if err := s.sessions.Delete(r.Context(), cookie.Value); err != nil {
			http.Error(w, "failed to reset session", http.StatusInternalServerError)
			return
		}
	}
	clearSessionCookie(w)
	redirectToStep(w, r, wizard.StepProfile)
}

func (s *server) handleReportText(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r, s.sessionTTL)
	state, err := s.sessions.Load(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}

	settings, err := seed.LoadSettings(r.Context(), s.db)
	if err != nil {
		http.Error(w, "failed to load settings", http.StatusInternalServerError)
		return
	}

	body, err := state.Report(settings.Currency)
	if err != nil {
		http.Error(w, wizard.Message(err), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

func (s *server) stepView(ctx context.Context, state wizard.State) (stepViewData, error) {
	settings, err := seed.LoadSettings(ctx, s.db)
	if err != nil {
		return stepViewData{}, err
	}

	data := stepViewData{
		Step:     state.CurrentStep(),
		Steps:    stepLinks(state),
		State:    state,
		Profile:  profileForm{WeightKg: 4.0, AgeYears: 2, Neutered: true, BCS: 5},
		Plan:     planForm{WetPercentage: settings.DefaultWetPercentage},
		Currency: settings.Currency,
	}

	if p := state.Profile; p != nil {
		data.Profile = profileForm{
			WeightKg:  p.WeightKg,
			AgeYears:  p.AgeMonths / 12,
			AgeMonths: p.AgeMonths % 12,
			Neutered:  p.Neutered,
			BCS:       p.BCS,
			Pregnant:  p.Pregnant,
			Lactating: p.Lactating,
		}
	}
	if state.Food != nil {
		data.Food = *state.Food
	}
	if state.Plan != nil {
		data.Plan.WetPercentage = state.Plan.WetPercentage
	}
	if state.CurrentStep() == wizard.StepReport {
		if data.Report, err = state.Report(settings.Currency); err != nil {
			data.ErrorMessage = wizard.Message(err)
		}
	}

	return data, nil
}

func stepLinks(state wizard.State) []stepLink {
	done := map[wizard.Step]bool{
		wizard.StepProfile: state.Energy != nil,
		wizard.StepIntake:  state.Intake != nil,
		wizard.StepPlan:    state.Plan != nil,
	}

	links := make([]stepLink, 0, 4)
	for step := wizard.StepProfile; step <= wizard.StepReport; step++ {
		links = append(links, stepLink{
			Number: int(step),
			Title:  step.Title(),
			Active: step == state.CurrentStep(),
			Done:   done[step],
		})
	}
	return links
}

// submitStep parses the form for step and applies it to state.
func submitStep(state wizard.State, step wizard.Step, r *http.Request) (wizard.State, error) {
	switch step {
	case wizard.StepProfile:
		in, err := parseProfileForm(r)
		if err != nil {
			return state, err
		}
		return state.SubmitProfile(in)
	case wizard.StepIntake:
		food, err := parseFoodForm(r)
		if err != nil {
			return state, err
		}
		return state.SubmitIntake(food)
	case wizard.StepPlan:
		in, err := parsePlanForm(r)
		if err != nil {
			return state, err
		}
		return state.SubmitPlan(in)
	default:
		return state, fmt.Errorf("%w: the report has no form", wizard.ErrStepNotActive)
	}
}

// overlayForm keeps what the user typed when a submission is rejected.
func overlayForm(data *stepViewData, step wizard.Step, r *http.Request) {
	switch step {
	case wizard.StepProfile:
		if in, err := parseProfileForm(r); err == nil {
			data.Profile = profileForm(in)
		}
	case wizard.StepIntake:
		if food, err := parseFoodForm(r); err == nil {
			data.Food = food
		}
	case wizard.StepPlan:
		if in, err := parsePlanForm(r); err == nil {
			data.Plan = planForm(in)
		}
	}
}

func submitMessage(err error) string {
	var fieldErr formError
	if errors.As(err, &fieldErr) {
		return fieldErr.Error()
	}
	return wizard.Message(err)
}

func parseStep(raw string) (wizard.Step, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	step := wizard.Step(n)
	return step, step.Valid()
}

func stepPath(step wizard.Step) string {
	return "/step/" + strconv.Itoa(int(step))
}

func stepTemplate(step wizard.Step) string {
	return "step" + strconv.Itoa(int(step)) + ".html"
}

func redirectToStep(w http.ResponseWriter, r *http.Request, step wizard.Step) {
	http.Redirect(w, r, stepPath(step), http.StatusSeeOther)
}

func (s *server) renderTemplate(w http.ResponseWriter, status int, page string, data any) {
	templates, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(
		web.Templates,
		"templates/layout.html",
		"templates/"+page,
	)
	if err != nil {
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
}

var templateFuncs = template.FuncMap{
	"kcal": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"factor": func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
	"signed": func(v float64) string {
		if v > 0 {
			return "+" + strconv.FormatFloat(v, 'f', 2, 64)
		}
		return strconv.FormatFloat(v, 'f', 2, 64)
	},
	"minus": func(a, b int) int { return a - b },
}
