package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/parnab/overflow/internal/model"
)

// Response is the standard JSON envelope for CLI output.
type Response struct {
	Status string `json:"status"`         // "ok"
	Data   any    `json:"data,omitempty"` // payload
}

// writeJSON emits the payload in the JSON envelope with stable indentation.
func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Response{Status: "ok", Data: data})
}

// renderQuestions writes one line per question in listing order.
func renderQuestions(w io.Writer, questions []model.Question) {
	if len(questions) == 0 {
		fmt.Fprintln(w, "no questions")
		return
	}
	for _, q := range questions {
		fmt.Fprintf(w, "#%d %s (by %s, votes %d, answers %d)\n",
			q.ID, q.Title, q.OwnerName, q.VoteCount, q.AnswerCount)
	}
}

// renderTags writes one line per tag with its usage count.
func renderTags(w io.Writer, tags []model.TagCount) {
	if len(tags) == 0 {
		fmt.Fprintln(w, "no tags")
		return
	}
	for _, tc := range tags {
		fmt.Fprintf(w, "%s (%d)\n", tc.Name, tc.Count)
	}
}
