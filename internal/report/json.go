package report

import (
	"encoding/json"
	"io"
	"os"

	"github.com/bayneri/attendance/internal/evaluate"
	"github.com/bayneri/attendance/internal/projector"
)

func WriteJSON(path string, payload interface{}) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}

func WriteSummaryJSON(path string, summary evaluate.Summary) error {
	return WriteJSON(path, summary)
}

type projection struct {
	Query  projector.Query  `json:"query"`
	Result projector.Result `json:"result"`
}

// EncodeResultJSON writes a single projection to w.
func EncodeResultJSON(w io.Writer, query projector.Query, result projector.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(projection{Query: query, Result: result})
}
