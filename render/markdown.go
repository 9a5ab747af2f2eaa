package render

import (
	"fmt"

	"github.com/Dosada05/tournament-site/models"
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Markdown converts the rendered page into a Markdown digest suitable for
// pasting into a chat.
func Markdown(snapshot *models.Snapshot) ([]byte, error) {
	page, err := HTML(snapshot, Options{})
	if err != nil {
		return nil, err
	}
	md, err := htmltomarkdown.ConvertString(string(page))
	if err != nil {
		return nil, fmt.Errorf("failed to convert page to markdown: %w", err)
	}
	return []byte(md + "\n"), nil
}
