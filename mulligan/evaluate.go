// SPDX-License-Identifier: MIT
package mulligan

import (
	"sort"
	"strconv"

	"github.com/deckforge/sufficiency/decimal"
	"github.com/deckforge/sufficiency/layer"
	"github.com/deckforge/sufficiency/packs"
)

// Evaluate produces layer 3's payload for one format.
//
// assumptions == nil SKIPs with MULLIGAN_ASSUMPTIONS_UNAVAILABLE. A format
// absent from assumptions.FormatDefaults SKIPs with
// FORMAT_ASSUMPTIONS_UNAVAILABLE. deckSize is N, the clamp ceiling.
func Evaluate(assumptions *packs.MulliganAssumptions, format string, deckSize int) *Payload {
	if assumptions == nil {
		return skip(CodeMulliganAssumptionsUnavailable)
	}
	fd, ok := assumptions.FormatDefaults[format]
	if !ok {
		return skip(CodeFormatAssumptionsUnavailable)
	}

	policyIDs := make([]string, 0, len(packs.RequiredMulliganPolicies))
	policyIDs = append(policyIDs, packs.RequiredMulliganPolicies...)
	sort.Strings(policyIDs)

	rows := make([]PolicyRow, 0, len(policyIDs))
	for _, pid := range policyIDs {
		policy, ok := fd.Policies[pid]
		if !ok {
			continue
		}
		row := PolicyRow{
			PolicyID:               pid,
			EffectiveNByCheckpoint: make(map[int]float64, len(Checkpoints)),
		}
		for _, cp := range Checkpoints {
			raw := policy.EffectiveNByCheckpoint[strconv.Itoa(cp)]
			clamped := decimal.Clamp(raw, 0, float64(deckSize))
			rounded, err := decimal.Round6(clamped)
			if err != nil {
				rounded = 0
			}
			row.EffectiveNByCheckpoint[cp] = rounded
		}
		rows = append(rows, row)
	}

	return &Payload{
		Meta: layer.Meta{
			Version: PayloadVersion,
			Status:  layer.StatusOK,
			Codes:   []string{},
		},
		DefaultPolicy: fd.DefaultPolicy,
		Policies:      rows,
	}
}

func skip(reasonCode string) *Payload {
	return &Payload{
		Meta: layer.Meta{
			Version:    PayloadVersion,
			Status:     layer.StatusSkip,
			ReasonCode: reasonCode,
			Codes:      []string{},
		},
	}
}
