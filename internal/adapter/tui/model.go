package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/srgjo27/bus_booking/internal/core/domain"
	"github.com/srgjo27/bus_booking/internal/core/ports"
	"github.com/srgjo27/bus_booking/internal/core/services"
)

type screen int

const (
	screenSearch screen = iota
	screenBooking
)

// bookingZone is which part of the booking screen has keyboard focus.
type bookingZone int

const (
	zoneSeats bookingZone = iota
	zonePassengers
	zoneCoupon
)

// Search form field order. fieldCount doubles as the results-pane focus
// index.
const (
	fieldFrom = iota
	fieldTo
	fieldDate
	fieldOperator
	fieldType
	fieldFareMin
	fieldFareMax
	fieldCount
)

const (
	passFieldName = iota
	passFieldPhone
	passFieldEmail
	passFieldAge
	passFieldGender
	passFieldCount
)

const (
	searchTimeout = 15 * time.Second
	toastInterval = 250 * time.Millisecond
)

type searchResultMsg struct {
	results []services.BusResult
	err     error
}

type seatLayoutMsg struct {
	layout *domain.SeatLayout
	err    error
}

type bookingResultMsg struct {
	resp *domain.BookingResponse
	err  error
}

type suggestMsg struct {
	field int
	items []string
}

type toastTickMsg time.Time

var genderCycle = []domain.Gender{domain.GenderUnset, domain.GenderMale, domain.GenderFemale, domain.GenderOther}

var sortCycle = []services.SortMode{
	services.SortRecommended,
	services.SortFareAsc,
	services.SortFareDesc,
	services.SortDepartAsc,
	services.SortDepartDesc,
	services.SortRatingDesc,
}

// Model is the bubbletea front-end. It is a pure projection of the core
// components: the session, seat map, and roster own all booking state;
// the model only holds cursors, text inputs, and fetched result lists.
type Model struct {
	logger     *zap.Logger
	searchSvc  *services.SearchService
	session    *services.BookingSession
	toasts     *ToastCenter
	suggesters [2]*services.Suggester

	screen screen
	width  int
	height int

	// Search screen.
	inputs        []textinput.Model
	focus         int
	suggestions   []string
	suggestFor    int
	suggestCursor int
	searching     bool
	hasSearched   bool
	results       []services.BusResult
	sorted        []services.BusResult
	sortMode      services.SortMode
	resultCursor  int

	// Booking screen.
	zone       bookingZone
	seatCursor int
	passRow    int
	passField  int
	passInputs [][]textinput.Model
	genders    []domain.Gender
	coupon     textinput.Model
	submitting bool
}

// New wires the front-end to the core services. The ToastCenter must be
// the same instance the session was given as its Notifier.
func New(searchSvc *services.SearchService, session *services.BookingSession, toasts *ToastCenter, fromSuggest, toSuggest *services.Suggester, logger *zap.Logger) *Model {
	placeholders := []string{"From city", "To city", "YYYY-MM-DD", "Operator", "Bus type", "Min fare", "Max fare"}
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 18
		inputs[i] = ti
	}
	inputs[fieldFrom].Focus()

	coupon := textinput.New()
	coupon.Placeholder = "Coupon code"
	coupon.CharLimit = 32
	coupon.Width = 18

	return &Model{
		logger:     logger,
		searchSvc:  searchSvc,
		session:    session,
		toasts:     toasts,
		suggesters: [2]*services.Suggester{fromSuggest, toSuggest},
		inputs:     inputs,
		coupon:     coupon,
		suggestFor: -1,
		sortMode:   services.SortRecommended,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.waitSuggest(0),
		m.waitSuggest(1),
		toastTick(),
	)
}

func toastTick() tea.Cmd {
	return tea.Tick(toastInterval, func(t time.Time) tea.Msg { return toastTickMsg(t) })
}

func (m *Model) waitSuggest(field int) tea.Cmd {
	ch := m.suggesters[field].Updates()
	return func() tea.Msg {
		return suggestMsg{field: field, items: <-ch}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case toastTickMsg:
		m.toasts.Expire()
		return m, toastTick()

	case suggestMsg:
		if m.screen == screenSearch && m.focus == msg.field {
			m.suggestions = msg.items
			m.suggestFor = msg.field
			m.suggestCursor = -1
		}
		return m, m.waitSuggest(msg.field)

	case searchResultMsg:
		m.searching = false
		if msg.err != nil {
			m.logger.Warn("search failed", zap.Error(msg.err))
			m.toasts.Notify(ports.LevelError, "Network error while searching")
			return m, nil
		}
		m.results = msg.results
		m.applySort()
		m.resultCursor = 0
		return m, nil

	case seatLayoutMsg:
		m.session.SeatLayoutLoaded(msg.layout, msg.err)
		m.seatCursor = 0
		m.rebuildPassengerRows()
		return m, nil

	case bookingResultMsg:
		m.submitting = false
		m.session.BookingFinished(msg.resp, msg.err)
		if m.session.State() == services.StateIdle {
			// Success: the session closed itself; navigate back.
			m.screen = screenSearch
			m.passInputs = nil
			m.genders = nil
			m.coupon.SetValue("")
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == screenBooking {
			return m.updateBooking(msg)
		}
		return m.updateSearch(msg)
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.setSearchFocus((m.focus + 1) % (fieldCount + 1))
		return m, nil
	case "shift+tab":
		m.setSearchFocus((m.focus + fieldCount) % (fieldCount + 1))
		return m, nil
	case "esc":
		m.clearSuggestions()
		return m, nil
	case "up":
		if m.suggestionsVisible() {
			if m.suggestCursor > 0 {
				m.suggestCursor--
			}
			return m, nil
		}
		if m.focus == fieldCount && m.resultCursor > 0 {
			m.resultCursor--
		}
		return m, nil
	case "down":
		if m.suggestionsVisible() {
			if m.suggestCursor < len(m.suggestions)-1 {
				m.suggestCursor++
			}
			return m, nil
		}
		if m.focus == fieldCount && m.resultCursor < len(m.sorted)-1 {
			m.resultCursor++
		}
		return m, nil
	case "ctrl+s":
		m.cycleSort()
		return m, nil
	case "enter":
		if m.suggestionsVisible() && m.suggestCursor >= 0 {
			m.inputs[m.focus].SetValue(m.suggestions[m.suggestCursor])
			m.suggesters[m.focus].Cancel()
			m.clearSuggestions()
			return m, m.startSearch()
		}
		if m.focus == fieldCount {
			if len(m.sorted) > 0 {
				return m, m.openBooking()
			}
			return m, nil
		}
		return m, m.startSearch()
	}

	if m.focus == fieldCount {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "j":
			if m.resultCursor < len(m.sorted)-1 {
				m.resultCursor++
			}
		case "k":
			if m.resultCursor > 0 {
				m.resultCursor--
			}
		case "s":
			m.cycleSort()
		}
		return m, nil
	}

	// Route the keystroke to the focused form input; from/to feed the
	// autosuggest on every edit.
	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	after := m.inputs[m.focus].Value()
	if after != before && (m.focus == fieldFrom || m.focus == fieldTo) {
		m.suggesters[m.focus].Input(strings.TrimSpace(after))
	}
	return m, cmd
}

func (m *Model) updateBooking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		// A submission is in flight; the state check in the session
		// would reject everything anyway, so just swallow input.
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.session.Close()
		m.screen = screenSearch
		m.passInputs = nil
		m.genders = nil
		m.coupon.SetValue("")
		return m, nil
	case "tab":
		m.cycleZone(1)
		return m, nil
	case "shift+tab":
		m.cycleZone(-1)
		return m, nil
	case "ctrl+b":
		return m, m.confirmBooking()
	}

	switch m.zone {
	case zoneSeats:
		return m.updateSeats(msg)
	case zonePassengers:
		return m.updatePassengers(msg)
	case zoneCoupon:
		return m.updateCoupon(msg)
	}
	return m, nil
}

func (m *Model) updateSeats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	labels := m.session.SeatMap().Labels()
	if len(labels) == 0 {
		return m, nil
	}
	switch msg.String() {
	case "left", "h":
		if m.seatCursor > 0 {
			m.seatCursor--
		}
	case "right", "l":
		if m.seatCursor < len(labels)-1 {
			m.seatCursor++
		}
	case "up", "k":
		if m.seatCursor >= seatsPerRow {
			m.seatCursor -= seatsPerRow
		}
	case "down", "j":
		if m.seatCursor+seatsPerRow < len(labels) {
			m.seatCursor += seatsPerRow
		}
	case " ", "enter":
		if err := m.session.ToggleSeat(labels[m.seatCursor]); err != nil {
			m.logger.Error("seat toggle rejected", zap.Error(err))
			return m, nil
		}
		m.rebuildPassengerRows()
	case "c":
		return m, m.confirmBooking()
	}
	return m, nil
}

func (m *Model) updatePassengers(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.passInputs) == 0 {
		return m, nil
	}
	switch msg.String() {
	case "up":
		m.movePassengerFocus(-1)
		return m, nil
	case "down", "enter":
		m.movePassengerFocus(1)
		return m, nil
	}

	if m.passField == passFieldGender {
		switch msg.String() {
		case "left", "right":
			step := 1
			if msg.String() == "left" {
				step = len(genderCycle) - 1
			}
			current := 0
			for i, g := range genderCycle {
				if g == m.genders[m.passRow] {
					current = i
					break
				}
			}
			m.genders[m.passRow] = genderCycle[(current+step)%len(genderCycle)]
			m.syncRosterRow(m.passRow)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.passInputs[m.passRow][m.passField], cmd = m.passInputs[m.passRow][m.passField].Update(msg)
	m.syncRosterRow(m.passRow)
	return m, cmd
}

func (m *Model) updateCoupon(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		if err := m.session.ApplyCoupon(m.coupon.Value()); err != nil {
			m.logger.Warn("coupon apply rejected", zap.Error(err))
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.coupon, cmd = m.coupon.Update(msg)
	return m, cmd
}

// --- commands ---

func (m *Model) startSearch() tea.Cmd {
	m.searching = true
	m.hasSearched = true
	m.clearSuggestions()
	query := ports.SearchQuery{
		From:     strings.TrimSpace(m.inputs[fieldFrom].Value()),
		To:       strings.TrimSpace(m.inputs[fieldTo].Value()),
		Date:     strings.TrimSpace(m.inputs[fieldDate].Value()),
		Operator: strings.TrimSpace(m.inputs[fieldOperator].Value()),
		Type:     strings.TrimSpace(m.inputs[fieldType].Value()),
		FareMin:  strings.TrimSpace(m.inputs[fieldFareMin].Value()),
		FareMax:  strings.TrimSpace(m.inputs[fieldFareMax].Value()),
	}
	svc := m.searchSvc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()
		results, err := svc.Search(ctx, query)
		return searchResultMsg{results: results, err: err}
	}
}

func (m *Model) openBooking() tea.Cmd {
	bus := m.sorted[m.resultCursor].Bus
	date := strings.TrimSpace(m.inputs[fieldDate].Value())
	m.session.OpenForBus(bus, date)
	m.screen = screenBooking
	m.zone = zoneSeats
	m.seatCursor = 0
	m.passInputs = nil
	m.genders = nil
	m.coupon.SetValue("")
	session := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()
		layout, err := session.FetchSeatLayout(ctx)
		return seatLayoutMsg{layout: layout, err: err}
	}
}

func (m *Model) confirmBooking() tea.Cmd {
	req, err := m.session.Confirm()
	if err != nil {
		m.logger.Warn("confirm rejected", zap.Error(err))
		return nil
	}
	if req == nil {
		// Refused with a toast already queued (no seats, bad roster).
		return nil
	}
	m.submitting = true
	session := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()
		resp, submitErr := session.SubmitBooking(ctx, req)
		return bookingResultMsg{resp: resp, err: submitErr}
	}
}

// --- focus and sync helpers ---

func (m *Model) setSearchFocus(focus int) {
	m.clearSuggestions()
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = focus
	if focus < fieldCount {
		m.inputs[focus].Focus()
	}
}

func (m *Model) suggestionsVisible() bool {
	return len(m.suggestions) > 0 && m.suggestFor == m.focus &&
		(m.focus == fieldFrom || m.focus == fieldTo)
}

func (m *Model) clearSuggestions() {
	m.suggestions = nil
	m.suggestFor = -1
	m.suggestCursor = -1
}

func (m *Model) cycleSort() {
	for i, mode := range sortCycle {
		if mode == m.sortMode {
			m.sortMode = sortCycle[(i+1)%len(sortCycle)]
			break
		}
	}
	m.applySort()
	if m.resultCursor >= len(m.sorted) {
		m.resultCursor = 0
	}
}

func (m *Model) applySort() {
	m.sorted = services.Sort(m.results, m.sortMode)
}

func (m *Model) cycleZone(step int) {
	zones := []bookingZone{zoneSeats, zoneCoupon}
	if len(m.passInputs) > 0 {
		zones = []bookingZone{zoneSeats, zonePassengers, zoneCoupon}
	}
	current := 0
	for i, z := range zones {
		if z == m.zone {
			current = i
			break
		}
	}
	m.zone = zones[(current+step+len(zones))%len(zones)]
	m.refocusBooking()
}

func (m *Model) refocusBooking() {
	for row := range m.passInputs {
		for field := range m.passInputs[row] {
			m.passInputs[row][field].Blur()
		}
	}
	m.coupon.Blur()
	switch m.zone {
	case zonePassengers:
		if m.passRow >= len(m.passInputs) {
			m.passRow = 0
		}
		if m.passField != passFieldGender {
			m.passInputs[m.passRow][m.passField].Focus()
		}
	case zoneCoupon:
		m.coupon.Focus()
	}
}

func (m *Model) movePassengerFocus(step int) {
	total := len(m.passInputs) * passFieldCount
	if total == 0 {
		return
	}
	flat := (m.passRow*passFieldCount + m.passField + step + total) % total
	m.passRow = flat / passFieldCount
	m.passField = flat % passFieldCount
	m.refocusBooking()
}

// rebuildPassengerRows re-projects the roster into text inputs. The
// roster is the source of truth: rows are rebuilt from its records, so
// values survive resizes exactly as the roster preserves them.
func (m *Model) rebuildPassengerRows() {
	records := m.session.Roster().Records()
	rows := make([][]textinput.Model, len(records))
	genders := make([]domain.Gender, len(records))
	placeholders := []string{"Name", "Phone", "Email", "Age"}
	widths := []int{16, 12, 18, 4}
	values := func(p domain.Passenger) []string {
		age := ""
		if p.Age != nil {
			age = strconv.Itoa(*p.Age)
		}
		return []string{p.Name, p.Phone, p.Email, age}
	}
	for row, record := range records {
		vals := values(record)
		inputs := make([]textinput.Model, passFieldCount-1)
		for field := range inputs {
			ti := textinput.New()
			ti.Placeholder = placeholders[field]
			ti.CharLimit = 64
			ti.Width = widths[field]
			ti.SetValue(vals[field])
			inputs[field] = ti
		}
		rows[row] = inputs
		genders[row] = record.Gender
	}
	m.passInputs = rows
	m.genders = genders
	if m.passRow >= len(rows) {
		m.passRow, m.passField = 0, 0
	}
	if m.zone == zonePassengers && len(rows) == 0 {
		m.zone = zoneSeats
	}
	m.refocusBooking()
}

func (m *Model) syncRosterRow(row int) {
	inputs := m.passInputs[row]
	record := domain.Passenger{
		Name:   inputs[passFieldName].Value(),
		Phone:  inputs[passFieldPhone].Value(),
		Email:  inputs[passFieldEmail].Value(),
		Age:    domain.ParseAge(inputs[passFieldAge].Value()),
		Gender: m.genders[row],
	}
	if err := m.session.Roster().Update(row, record); err != nil {
		m.logger.Error("roster update rejected", zap.Int("row", row), zap.Error(err))
	}
}
