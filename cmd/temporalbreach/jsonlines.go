package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/samdwyer/temporalbreach/internal/level"
)

// jsonLines is a level.Receiver that encodes each record on its own line.
type jsonLines struct {
	enc *json.Encoder
}

func newJSONLines(w io.Writer) *jsonLines {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &jsonLines{enc: enc}
}

func (j *jsonLines) ReceiveLevel(_ context.Context, record level.Record) error {
	return j.enc.Encode(record)
}
