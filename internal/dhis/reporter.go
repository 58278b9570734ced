// SPDX-License-Identifier: Apache-2.0

package dhis

import (
	"encoding/json"
	"io"
	"os"

	"github.com/dishtools/dishctl/internal/logger"
	"github.com/dishtools/dishctl/internal/utils"
	"github.com/dishtools/dishctl/models"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Reporter turns a [Result] into the console lines and optional output
// file the CLI historically produced. It exists for CLI parity only;
// programmatic callers should branch on the Result directly.
type Reporter struct {
	log        *logger.Logger
	outputFile string

	out io.Writer
}

// NewReporter constructs a Reporter. When outputFile is non-empty the
// response body is written there instead of being rendered on the
// console.
func NewReporter(log *logger.Logger, outputFile string) *Reporter {
	return &Reporter{log: log, outputFile: outputFile, out: os.Stdout}
}

// Report logs the outcome of res and renders its response body.
//
// Imported and conflict results log "imported" (conflicts additionally
// log "conflict") and have their body pretty-printed to the output file
// or the console. Unauthorized results log an authentication-failure
// message with the status code. Everything else logs a generic failure
// with status code, transport error, and raw body. Nothing is retried.
func (r *Reporter) Report(res Result) {
	if res.EchoErr != nil {
		r.log.Warn().Err(res.EchoErr).Msg("payload file not written")
	}

	switch res.Outcome {
	case OutcomeImported:
		r.log.Info().Int("status", res.StatusCode).Msg("imported")
		r.summarize(res.Body)
		r.render(res.Body)
	case OutcomeConflict:
		r.log.Warn().Int("status", res.StatusCode).Msg("conflict")
		r.log.Info().Int("status", res.StatusCode).Msg("imported")
		r.summarize(res.Body)
		r.render(res.Body)
	case OutcomeUnauthorized:
		r.log.Error().Int("status", res.StatusCode).Msg("authentication failed, check dish.json credentials")
	default:
		r.log.Error().Err(res.Err).Int("status", res.StatusCode).
			Str("body", string(res.Body)).Msg("import failed")
	}
}

// summarize decodes an import summary body and logs its counts plus a
// per-object tally of conflicts. Bodies that do not look like an import
// summary are skipped.
func (r *Reporter) summarize(body []byte) {
	if !gjson.GetBytes(body, "importCount").Exists() {
		return
	}

	var summary models.ImportSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return
	}

	r.log.Info().
		Str("status", summary.Status).
		Int("imported", summary.ImportCount.Imported).
		Int("updated", summary.ImportCount.Updated).
		Int("ignored", summary.ImportCount.Ignored).
		Int("deleted", summary.ImportCount.Deleted).
		Msg("import summary")

	tally := utils.NewTally()
	for _, conflict := range summary.Conflicts {
		tally.Increment(conflict.Object)
	}
	for _, entry := range tally.Entries() {
		r.log.Warn().Str("object", entry.Key).Int("count", entry.Count).Msg("import conflict")
	}
}

// render pretty-prints body to the output file when one is configured,
// else to the console. A write failure is logged and swallowed; the
// import itself already succeeded.
func (r *Reporter) render(body []byte) {
	if len(body) == 0 {
		return
	}

	formatted := pretty.Pretty(body)

	if r.outputFile != "" {
		if err := os.WriteFile(r.outputFile, formatted, 0o644); err != nil {
			r.log.Warn().Err(err).Msg("output file not written")
		}
		return
	}

	_, _ = r.out.Write(formatted)
}
