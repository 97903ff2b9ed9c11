// SPDX-License-Identifier: MIT
package obslog_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deckforge/sufficiency/internal/obslog"
)

func TestNew_JSONFormatWritesOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	log := obslog.New(obslog.Config{Level: obslog.LevelInfo, Format: obslog.FormatJSON, Output: &buf})

	log.Info("hello")

	require.Contains(t, buf.String(), `"message":"hello"`)
	require.Contains(t, buf.String(), `"level":"info"`)
}

func TestNew_DebugSuppressedBelowInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log := obslog.New(obslog.Config{Level: obslog.LevelInfo, Format: obslog.FormatJSON, Output: &buf})

	log.Debug("should not appear")

	require.Empty(t, buf.String())
}

func TestWithFields_AttachesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := obslog.New(obslog.Config{Level: obslog.LevelInfo, Format: obslog.FormatJSON, Output: &buf})

	log.WithFields(map[string]interface{}{"profile_id": "default"}).Info("build started")

	require.Contains(t, buf.String(), `"profile_id":"default"`)
}

func TestError_AttachesErrString(t *testing.T) {
	var buf bytes.Buffer
	log := obslog.New(obslog.Config{Level: obslog.LevelInfo, Format: obslog.FormatJSON, Output: &buf})

	log.Error("failed", errors.New("boom"))

	require.Contains(t, buf.String(), `"error":"boom"`)
}

func TestLogBuildComplete_CarriesHashAndStatus(t *testing.T) {
	var buf bytes.Buffer
	log := obslog.New(obslog.Config{Level: obslog.LevelInfo, Format: obslog.FormatJSON, Output: &buf})

	log.LogBuildComplete("PASS", "deadbeef", 0)

	require.Contains(t, buf.String(), `"status":"PASS"`)
	require.Contains(t, buf.String(), `"build_hash_v1":"deadbeef"`)
}

func TestLogLayerSkipped_LogsAtWarnLevel(t *testing.T) {
	var buf bytes.Buffer
	log := obslog.New(obslog.Config{Level: obslog.LevelInfo, Format: obslog.FormatJSON, Output: &buf})

	log.LogLayerSkipped("sufficiency_summary", "PROFILE_THRESHOLDS_UNAVAILABLE")

	require.Contains(t, buf.String(), `"level":"warn"`)
	require.Contains(t, buf.String(), `"layer":"sufficiency_summary"`)
}
