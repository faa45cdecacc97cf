// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inventory

import (
	"math"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/textiletwin/twin/factory"
)

// AllStatuses is the status filter value that matches every record.
const AllStatuses = "all"

// FuzzyThreshold is the minimum Jaro-Winkler similarity for a search
// term to match a word of a record.
const FuzzyThreshold = 0.85

// minFuzzyLen is the shortest search term that is matched fuzzily.
const minFuzzyLen = 3

// Filter selects records by search text and status.
type Filter struct {

	// Search matches a case-insensitive substring of the name, kind or
	// operator, or a word of them within [FuzzyThreshold] similarity.
	Search string

	// Status is [AllStatuses] (or empty), or a status the record must have.
	Status string
}

// StatusFilters returns the status filter values in control order.
func StatusFilters() []string {
	fs := []string{AllStatuses}
	for _, s := range factory.Statuses() {
		fs = append(fs, string(s))
	}
	return fs
}

// Matches returns whether the record passes the filter.
func (f *Filter) Matches(r *Record) bool {
	if f.Status != "" && f.Status != AllStatuses && string(r.Status) != f.Status {
		return false
	}
	return f.matchesSearch(r)
}

func (f *Filter) matchesSearch(r *Record) bool {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	fields := []string{strings.ToLower(r.Name), strings.ToLower(string(r.Kind)), strings.ToLower(r.Operator)}
	for _, fl := range fields {
		if strings.Contains(fl, term) {
			return true
		}
	}
	if len(term) < minFuzzyLen {
		return false
	}
	jw := metrics.NewJaroWinkler()
	for _, fl := range fields {
		for _, w := range strings.Fields(fl) {
			w = strings.Trim(w, "#,.")
			if strutil.Similarity(term, w, jw) >= FuzzyThreshold {
				return true
			}
		}
	}
	return false
}

// Apply returns the records that pass the filter, in order.
func (f *Filter) Apply(records []Record) []Record {
	var res []Record
	for i := range records {
		if f.Matches(&records[i]) {
			res = append(res, records[i])
		}
	}
	return res
}

// Summary are the counts shown above the machine list.
type Summary struct {
	Total         int
	Running       int
	AvgEfficiency int
	Faulted       int
}

// Summarize returns the [Summary] of the given records.
func Summarize(records []Record) Summary {
	sm := Summary{Total: len(records)}
	var sum float64
	for i := range records {
		r := &records[i]
		switch r.Status {
		case factory.Running:
			sm.Running++
		case factory.Fault:
			sm.Faulted++
		}
		sum += float64(r.Efficiency)
	}
	if sm.Total > 0 {
		sm.AvgEfficiency = int(math.Round(sum / float64(sm.Total)))
	}
	return sm
}
