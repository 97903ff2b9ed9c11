// SPDX-License-Identifier: MIT
package obslog

// LogBuildStart records the start of one pipeline.Run invocation.
func (l *Logger) LogBuildStart(profileID, bracketID string, deckSize int) {
	l.WithFields(map[string]interface{}{
		"profile_id": profileID,
		"bracket_id": bracketID,
		"deck_size":  deckSize,
	}).Info("build started")
}

// LogLayerSkipped records a layer that produced a SKIP-equivalent status,
// carrying the reason code for operators grepping logs for a build.
func (l *Logger) LogLayerSkipped(layerName, reasonCode string) {
	l.WithFields(map[string]interface{}{
		"layer":       layerName,
		"reason_code": reasonCode,
	}).Warn("layer skipped")
}

// LogBuildComplete records a finished build with its aggregate status and
// content hash, the two fields an operator diffing two builds cares about.
func (l *Logger) LogBuildComplete(status, buildHash string, unknownCount int) {
	l.WithFields(map[string]interface{}{
		"status":        status,
		"build_hash_v1": buildHash,
		"unknown_count": unknownCount,
	}).Info("build complete")
}
