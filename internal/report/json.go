package report

import (
	"encoding/json"
	"io"

	"github.com/a11yscan/a11yscan/internal/engine"
	"github.com/vmihailenco/msgpack/v5"
)

// WriteJSON writes an indented array of envelopes, one per target.
func WriteJSON(w io.Writer, results []engine.TargetResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(envelopes(results))
}

// WriteMsgpack writes the same envelopes as WriteJSON in MessagePack.
func WriteMsgpack(w io.Writer, results []engine.TargetResult) error {
	return msgpack.NewEncoder(w).Encode(envelopes(results))
}

// ReadMsgpack decodes envelopes written by WriteMsgpack.
func ReadMsgpack(r io.Reader) ([]Envelope, error) {
	var out []Envelope
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
