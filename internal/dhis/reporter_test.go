package dhis

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/dishtools/dishctl/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReporter(outputFile string) (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	logBuf := &bytes.Buffer{}
	outBuf := &bytes.Buffer{}
	log := &logger.Logger{Logger: zerolog.New(logBuf)}

	r := NewReporter(log, outputFile)
	r.out = outBuf
	return r, logBuf, outBuf
}

func TestReport_Imported(t *testing.T) {
	r, logBuf, outBuf := newTestReporter("")

	r.Report(Result{
		Outcome:    OutcomeImported,
		StatusCode: http.StatusOK,
		Body:       []byte(`{"status":"SUCCESS","importCount":{"imported":3,"updated":1,"ignored":0,"deleted":0}}`),
	})

	assert.Contains(t, logBuf.String(), `"message":"imported"`)
	assert.Contains(t, logBuf.String(), `"imported":3`)
	assert.Contains(t, outBuf.String(), `"status": "SUCCESS"`)
}

func TestReport_ConflictStillRenders(t *testing.T) {
	body := `{"status":"WARNING","importCount":{"imported":0,"updated":0,"ignored":2,"deleted":0},` +
		`"conflicts":[{"object":"fbfJHSPpUQD","value":"value is zero"},{"object":"fbfJHSPpUQD","value":"period closed"}]}`

	outputFile := filepath.Join(t.TempDir(), "response.json")
	r, logBuf, outBuf := newTestReporter(outputFile)

	r.Report(Result{
		Outcome:    OutcomeConflict,
		StatusCode: http.StatusConflict,
		Body:       []byte(body),
		Err:        ErrConflict,
	})

	assert.Contains(t, logBuf.String(), `"message":"conflict"`)
	assert.Contains(t, logBuf.String(), `"message":"imported"`)
	assert.Contains(t, logBuf.String(), `"object":"fbfJHSPpUQD"`)
	assert.Contains(t, logBuf.String(), `"count":2`)

	written, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(written), `"status": "WARNING"`)
	assert.Empty(t, outBuf.String())
}

func TestReport_Unauthorized(t *testing.T) {
	r, logBuf, outBuf := newTestReporter("")

	r.Report(Result{
		Outcome:    OutcomeUnauthorized,
		StatusCode: http.StatusUnauthorized,
		Err:        ErrUnauthorized,
	})

	assert.Contains(t, logBuf.String(), "authentication failed")
	assert.Contains(t, logBuf.String(), `"status":401`)
	assert.Empty(t, outBuf.String())
}

func TestReport_GenericFailure(t *testing.T) {
	r, logBuf, outBuf := newTestReporter("")

	r.Report(Result{
		Outcome:    OutcomeFailed,
		StatusCode: http.StatusBadGateway,
		Body:       []byte("upstream down"),
		Err:        errors.New("http 502: upstream down"),
	})

	assert.Contains(t, logBuf.String(), `"message":"import failed"`)
	assert.Contains(t, logBuf.String(), `"status":502`)
	assert.Contains(t, logBuf.String(), "upstream down")
	assert.Empty(t, outBuf.String())
}

func TestReport_EchoWriteFailureIsWarned(t *testing.T) {
	r, logBuf, _ := newTestReporter("")

	r.Report(Result{
		Outcome:    OutcomeImported,
		StatusCode: http.StatusOK,
		EchoErr:    errors.New("write payload file: permission denied"),
	})

	assert.Contains(t, logBuf.String(), "payload file not written")
	assert.Contains(t, logBuf.String(), `"message":"imported"`)
}

func TestReport_OutputFileWriteFailureIsSwallowed(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "no-such-dir", "response.json")
	r, logBuf, _ := newTestReporter(outputFile)

	r.Report(Result{
		Outcome:    OutcomeImported,
		StatusCode: http.StatusOK,
		Body:       []byte(`{"status":"SUCCESS"}`),
	})

	assert.Contains(t, logBuf.String(), "output file not written")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "imported", OutcomeImported.String())
	assert.Equal(t, "conflict", OutcomeConflict.String())
	assert.Equal(t, "unauthorized", OutcomeUnauthorized.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
}
