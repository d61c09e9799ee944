package cli

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

const defaultSmokeServer = "http://localhost:3000/api"

type smokeCheck struct {
	name   string
	method string
	path   string
	status int
}

// smokeChecks walks every public endpoint, including the error paths.
var smokeChecks = []smokeCheck{
	{"list all quotes", http.MethodGet, "/quotes", http.StatusOK},
	{"filter by category", http.MethodGet, "/quotes?category=mengajar", http.StatusOK},
	{"search text", http.MethodGet, "/quotes?query=ilmu", http.StatusOK},
	{"lookup via query id", http.MethodGet, "/quotes?id=1", http.StatusOK},
	{"random quote", http.MethodGet, "/quotes/random", http.StatusOK},
	{"categories", http.MethodGet, "/quotes/categories", http.StatusOK},
	{"quote by id", http.MethodGet, "/quotes/1", http.StatusOK},
	{"non-numeric id", http.MethodGet, "/quotes/abc", http.StatusBadRequest},
	{"unknown id", http.MethodGet, "/quotes/999999", http.StatusNotFound},
	{"writes rejected", http.MethodPost, "/quotes", http.StatusMethodNotAllowed},
}

func NewSmokeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "smoke",
		Short:        "Call every endpoint of a running API and report the status codes",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := rootOpts.Server
			if base == "" {
				base = defaultSmokeServer
			}
			return runSmoke(cmd, base)
		},
	}
}

func runSmoke(cmd *cobra.Command, base string) error {
	w := cmd.OutOrStdout()
	client := resty.New().
		SetBaseURL(strings.TrimRight(base, "/")).
		SetTimeout(10 * time.Second)

	color.New(color.FgCyan).Fprintf(w, "Smoke testing %s\n", base)

	failed := 0
	for _, check := range smokeChecks {
		res, err := client.R().SetContext(cmd.Context()).Execute(check.method, check.path)
		switch {
		case err != nil:
			failed++
			color.New(color.FgRed).Fprintf(w, "FAIL %-22s %s %s: %v\n", check.name, check.method, check.path, err)
		case res.StatusCode() != check.status:
			failed++
			color.New(color.FgRed).Fprintf(w, "FAIL %-22s %s %s: got %d, want %d\n", check.name, check.method, check.path, res.StatusCode(), check.status)
		default:
			color.New(color.FgGreen).Fprintf(w, "PASS %-22s %s %s: %d\n", check.name, check.method, check.path, res.StatusCode())
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d smoke checks failed", failed, len(smokeChecks))
	}
	color.New(color.FgCyan).Fprintf(w, "All %d checks passed\n", len(smokeChecks))
	return nil
}
