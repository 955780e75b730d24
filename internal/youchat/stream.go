package youchat

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
)

// Streams can carry a whole search-result frame on one line; the scanner's
// default 64K limit is too small.
const maxLineBytes = 1 << 20

// HandleResponse consumes a line-oriented event stream and folds every
// recognized frame into a Result. Lines that are blank, carry an event: tag,
// or do not parse as JSON are skipped. Reading continues until EOF, the
// context is done, or the reader fails; in the last two cases the partial
// Result is returned together with a *TransportError.
func (c *Client) HandleResponse(ctx context.Context, cfg Config, stream io.Reader) (*Result, error) {
	dec := &streamDecoder{}
	if cfg.Verbose {
		dec.echo = c.echo
	}

	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return dec.result(), &TransportError{Err: ctx.Err()}
		default:
		}
		dec.line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return dec.result(), &TransportError{Err: err}
	}

	res := dec.result()
	slog.Debug("Stream complete",
		"tokens", res.Tokens,
		"answer_chars", len(res.Answer),
		"related_searches", len(res.RelatedSearches),
	)
	return res, nil
}

// streamDecoder folds stream lines into an accumulating Result.
type streamDecoder struct {
	res    Result
	answer strings.Builder
	echo   io.Writer
}

func (d *streamDecoder) line(raw string) {
	if strings.TrimSpace(raw) == "" || strings.Contains(raw, "event:") {
		return
	}
	payload := strings.TrimPrefix(raw, "data: ")

	var v any
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		// Heartbeats and other non-JSON noise are expected on this stream.
		return
	}

	switch frame := v.(type) {
	case []any:
		for _, item := range frame {
			if obj, ok := item.(map[string]any); ok {
				d.apply(obj)
			}
		}
	case map[string]any:
		d.apply(frame)
	}
}

// apply folds one stream object into the accumulator. relatedSearches and
// query are last-write-wins; query keeps the whole enclosing object, not
// just the field. youChatToken fragments append in arrival order.
func (d *streamDecoder) apply(obj map[string]any) {
	if rs, ok := obj["relatedSearches"]; ok && truthy(rs) {
		if list, ok := rs.([]any); ok {
			d.res.RelatedSearches = list
		}
	}
	if q, ok := obj["query"]; ok && truthy(q) {
		d.res.Query = obj
	}
	if tok, ok := obj["youChatToken"].(string); ok && tok != "" {
		d.answer.WriteString(tok)
		d.res.Tokens++
		if d.echo != nil {
			io.WriteString(d.echo, tok)
		}
	}
}

func (d *streamDecoder) result() *Result {
	res := d.res
	res.Answer = d.answer.String()
	return &res
}

// truthy applies the loose presence check stream frames are written against:
// null, false, zero, empty string, and empty collections all count as
// absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
