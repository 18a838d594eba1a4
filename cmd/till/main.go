// Command till is the end-of-day drawer count for register staff. It walks
// the cashier through a bill-and-coin count, shows the variance against the
// running drawer expectation, and submits the close to the tillkeeper API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tillworks/tillkeeper/internal/money"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	problemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	summaryBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

var printer = message.NewPrinter(language.AmericanEnglish)

func formatAmount(m money.Money) string {
	return printer.Sprintf("%v", currency.Symbol(currency.USD.Amount(float64(m)/100)))
}

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, problemStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

func run() error {
	baseURL := os.Getenv("TILL_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   os.Getenv("TILL_API_TOKEN"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}

	var (
		locationID   string
		registerName string
	)

	lookupForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Location ID").
				Value(&locationID).
				Validate(func(s string) error {
					_, err := uuid.Parse(strings.TrimSpace(s))
					return err
				}),
			huh.NewInput().
				Title("Register").
				Placeholder("front-1").
				Value(&registerName),
		),
	).WithWidth(50).WithShowHelp(false)

	if err := lookupForm.Run(); err != nil {
		return err
	}

	sess, err := client.currentSession(strings.TrimSpace(locationID), strings.TrimSpace(registerName))
	if err != nil {
		return err
	}
	if sess == nil {
		fmt.Println(warnStyle.Render("No open drawer session on that register."))
		return nil
	}

	fmt.Println(sessionHeader(sess))

	breakdown, counted, err := countDrawer()
	if err != nil {
		return err
	}

	fmt.Println(countSummary(sess, counted))

	variance := counted - money.Money(sess.ExpectedTotal)

	var varianceReason string

	if variance != 0 {
		reasonForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Variance reason").
					Description("Leave blank if unknown").
					Value(&varianceReason),
			),
		).WithWidth(50).WithShowHelp(false)

		if err := reasonForm.Run(); err != nil {
			return err
		}
	}

	confirmed := false

	confirmForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Close drawer with %s counted?", formatAmount(counted))).
				Value(&confirmed),
		),
	).WithShowHelp(false)

	if err := confirmForm.Run(); err != nil {
		return err
	}
	if !confirmed {
		fmt.Println(warnStyle.Render("Drawer left open."))
		return nil
	}

	closed, err := client.closeSession(sess.ID, counted, breakdown, varianceReason)
	if err != nil {
		return err
	}

	fmt.Println(closedSummary(closed))

	return nil
}

// countDrawer runs one numeric input per denomination and returns the
// breakdown alongside its total.
func countDrawer() (money.Breakdown, money.Money, error) {
	counts := make(map[money.Denomination]*string, len(money.Denominations))

	fields := make([]huh.Field, 0, len(money.Denominations))

	for _, denom := range money.Denominations {
		value := new(string)
		counts[denom] = value

		face, _ := denom.FaceValue()

		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("%s (%s)", denom, formatAmount(face))).
			Placeholder("0").
			Value(value).
			Validate(validateCount))
	}

	countForm := huh.NewForm(huh.NewGroup(fields...).Title("Count the drawer")).
		WithWidth(50).
		WithShowHelp(false)

	if err := countForm.Run(); err != nil {
		return nil, 0, err
	}

	breakdown := money.Breakdown{}

	for denom, value := range counts {
		n, _ := strconv.Atoi(strings.TrimSpace(*value))
		if n > 0 {
			breakdown[denom] = n
		}
	}

	return breakdown, breakdown.Total(), nil
}

func validateCount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole number of pieces")
	}

	return nil
}

func sessionHeader(sess *sessionPayload) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Register %s — %s", sess.RegisterName, sess.BusinessDate)),
		labelStyle.Render("Opened:   ") + sess.OpenedAt.Local().Format("15:04"),
		labelStyle.Render("Expected: ") + formatAmount(money.Money(sess.ExpectedTotal)),
	}

	return summaryBorder.Render(strings.Join(lines, "\n"))
}

func countSummary(sess *sessionPayload, counted money.Money) string {
	variance := counted - money.Money(sess.ExpectedTotal)

	varianceLine := okStyle.Render("Balanced")
	if variance != 0 {
		style := warnStyle
		if variance.Abs() >= 1000 {
			style = problemStyle
		}
		varianceLine = style.Render(formatAmount(variance))
	}

	lines := []string{
		labelStyle.Render("Counted:  ") + formatAmount(counted),
		labelStyle.Render("Expected: ") + formatAmount(money.Money(sess.ExpectedTotal)),
		labelStyle.Render("Variance: ") + varianceLine,
	}

	return summaryBorder.Render(strings.Join(lines, "\n"))
}

func closedSummary(sess *sessionPayload) string {
	lines := []string{
		okStyle.Render("Drawer closed."),
		labelStyle.Render("Status:   ") + sess.Status,
	}

	if sess.Variance != nil {
		lines = append(lines, labelStyle.Render("Variance: ")+
			formatAmount(money.Money(*sess.Variance))+
			labelStyle.Render(" ("+sess.VarianceClass+")"))
	}

	return summaryBorder.Render(strings.Join(lines, "\n"))
}

// sessionPayload mirrors the API's session response; amounts arrive in minor
// units.
type sessionPayload struct {
	ID            uuid.UUID `json:"id"`
	RegisterName  string    `json:"register_name"`
	Status        string    `json:"status"`
	BusinessDate  string    `json:"business_date"`
	OpenedAt      time.Time `json:"opened_at"`
	ExpectedTotal int64     `json:"expected_total"`
	Variance      *int64    `json:"variance,omitempty"`
	VarianceClass string    `json:"variance_class,omitempty"`
}

type apiClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func (c *apiClient) currentSession(locationID, register string) (*sessionPayload, error) {
	query := url.Values{"location_id": {locationID}}
	if register != "" {
		query.Set("register", register)
	}

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/v1/sessions/current?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var sess *sessionPayload
	if err := c.do(req, &sess); err != nil {
		return nil, err
	}

	return sess, nil
}

func (c *apiClient) closeSession(id uuid.UUID, counted money.Money, breakdown money.Breakdown, varianceReason string) (*sessionPayload, error) {
	body, err := json.Marshal(map[string]any{
		"actual_cash_counted":    int64(counted),
		"denomination_breakdown": breakdown,
		"variance_reason":        varianceReason,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("%s/api/v1/sessions/%s/close", c.baseURL, id), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var sess *sessionPayload
	if err := c.do(req, &sess); err != nil {
		return nil, err
	}

	return sess, nil
}

func (c *apiClient) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Detail string `json:"detail"`
		}
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Detail != "" {
			return fmt.Errorf("%s", apiErr.Detail)
		}
		return fmt.Errorf("api returned %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
