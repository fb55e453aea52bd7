// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"

	"github.com/lumenplay/levelkeeper/models"
)

// MergeProgress merges a server progress snapshot into the local one under
// best-state-wins rules and returns the result sorted by entity id.
//
// Per entity: a record present on only one side is carried through unchanged.
// When both sides hold a record, sub-keys are merged individually field by
// field — a recorded pass is sticky and the high score and attempt count
// keep the larger value, so neither side's best result is ever lost; any
// remaining fields keep the local record. The merged completed flag is the
// OR of both sides, so completion never reverts.
//
// The function is pure and total: it holds for any input, never fails, and
// merging a snapshot with itself returns that snapshot.
func MergeProgress(server, local []models.ProgressRecord) []models.ProgressRecord {
	serverIdx := make(map[models.EntityID]models.ProgressRecord, len(server))
	for _, r := range server {
		serverIdx[r.EntityID] = r
	}

	merged := make([]models.ProgressRecord, 0, len(server)+len(local))
	seen := make(map[models.EntityID]struct{}, len(local))

	for _, localRecord := range local {
		seen[localRecord.EntityID] = struct{}{}

		serverRecord, both := serverIdx[localRecord.EntityID]
		if !both {
			merged = append(merged, localRecord)
			continue
		}
		merged = append(merged, mergeRecord(serverRecord, localRecord))
	}

	for _, serverRecord := range server {
		if _, ok := seen[serverRecord.EntityID]; !ok {
			merged = append(merged, serverRecord)
		}
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].EntityID < merged[j].EntityID })
	return merged
}

func mergeRecord(server, local models.ProgressRecord) models.ProgressRecord {
	out := models.ProgressRecord{
		EntityID:  local.EntityID,
		Completed: server.Completed || local.Completed,
	}

	seen := make(map[string]struct{}, len(local.SubKeys))
	for _, localSub := range local.SubKeys {
		seen[localSub.SubKey] = struct{}{}

		serverSub, both := server.SubKey(localSub.SubKey)
		if !both {
			out.SubKeys = append(out.SubKeys, localSub)
			continue
		}
		// field-level join so a passing side cannot erase the other
		// side's higher score; ties keep the local result
		out.SubKeys = append(out.SubKeys, localSub.Merge(serverSub))
	}

	for _, serverSub := range server.SubKeys {
		if _, ok := seen[serverSub.SubKey]; !ok {
			out.SubKeys = append(out.SubKeys, serverSub)
		}
	}

	sort.Slice(out.SubKeys, func(i, j int) bool { return out.SubKeys[i].SubKey < out.SubKeys[j].SubKey })
	return out
}
