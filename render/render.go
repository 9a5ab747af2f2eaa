// Package render turns a models.Snapshot into the published artifacts.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/Dosada05/tournament-site/models"
)

const (
	IndexFile    = "index.html"
	SnapshotFile = "standings.json"
	MarkdownFile = "standings.md"
)

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"team":   teamOrDash,
	"joined": joinTeams,
}).Parse(pageHTML))

type groupView struct {
	Label     string
	Teams     []string
	Standings []models.StandingsRow
}

type pageData struct {
	Title      string
	UpdatedAt  string
	Groups     []groupView
	Crosses    models.Crosses
	Matches    []models.Match
	Pending    []models.Fixture
	LiveReload bool
}

// Options tweak the HTML output.
type Options struct {
	// LiveReload injects the websocket client used by the preview server.
	LiveReload bool
}

// JSON encodes the snapshot with two-space indentation and without escaping
// non-ASCII or HTML characters.
func JSON(snapshot *models.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// HTML renders the results page.
func HTML(snapshot *models.Snapshot, opts Options) ([]byte, error) {
	data := pageData{
		Title:      snapshot.Title,
		UpdatedAt:  snapshot.UpdatedAt,
		Crosses:    snapshot.Crosses,
		Matches:    snapshot.Matches,
		Pending:    snapshot.Pending,
		LiveReload: opts.LiveReload,
	}
	for _, label := range groupOrder(snapshot) {
		data.Groups = append(data.Groups, groupView{
			Label:     label,
			Teams:     snapshot.Groups[label],
			Standings: snapshot.Standings[label],
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute page template: %w", err)
	}
	return buf.Bytes(), nil
}

// groupOrder falls back to sorted labels when the snapshot carries no order.
func groupOrder(snapshot *models.Snapshot) []string {
	if len(snapshot.GroupOrder) > 0 {
		return snapshot.GroupOrder
	}
	labels := make([]string, 0, len(snapshot.Groups))
	for label := range snapshot.Groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func teamOrDash(team *string) string {
	if team == nil || strings.TrimSpace(*team) == "" {
		return "—"
	}
	return *team
}

func joinTeams(teams []string) string {
	if len(teams) == 0 {
		return "—"
	}
	return strings.Join(teams, " · ")
}
