package policyprism_test

import (
	"testing"

	"github.com/fwojciec/policyprism"
	"github.com/stretchr/testify/assert"
)

func TestBuildReport(t *testing.T) {
	t.Parallel()

	ex := &policyprism.Extraction{
		Fields:     []policyprism.Field{{Label: "Policy Number", Value: "PN-1"}},
		Riders:     []string{"Waiver of Premium"},
		TextSample: "sample",
		Highlights: []string{"Parsed 1 of 1 pages (100 B)."},
		Actions:    []string{"derived action"},
	}
	stats := policyprism.Stats{PageCount: 1, ScannedPages: 1, ByteLength: 100, ContentHash: "abc"}
	extras := policyprism.Extras{
		Highlights: []string{"extra highlight"},
		Warnings:   []string{"extra warning"},
	}

	report := policyprism.BuildReport(ex, stats, map[string]string{"Title": "Doc"}, extras)

	assert.Equal(t, ex.Fields, report.Fields)
	assert.Equal(t, []string{"Parsed 1 of 1 pages (100 B).", "extra highlight"}, report.Highlights)
	assert.Equal(t, []string{"derived action"}, report.Actions)
	assert.Equal(t, []string{"extra warning"}, report.Warnings)
	assert.Equal(t, "sample", report.TextSample)
	assert.Equal(t, 1, report.PageCount)
	assert.Equal(t, "abc", report.ContentHash)
	assert.Equal(t, "Doc", report.Metadata["Title"])
}

func TestBuildReport_NilMetadata(t *testing.T) {
	t.Parallel()

	report := policyprism.BuildReport(&policyprism.Extraction{}, policyprism.Stats{}, nil, policyprism.Extras{})

	assert.NotNil(t, report.Metadata)
	assert.Empty(t, report.Metadata)
}

func TestAnalysis_Validate(t *testing.T) {
	t.Parallel()

	valid := &policyprism.Analysis{SourceURL: "https://example.com/p.pdf", Report: &policyprism.Report{}}
	assert.NoError(t, valid.Validate())

	missingURL := &policyprism.Analysis{Report: &policyprism.Report{}}
	assert.Equal(t, policyprism.EINVALID, policyprism.ErrorCode(missingURL.Validate()))

	missingReport := &policyprism.Analysis{SourceURL: "https://example.com/p.pdf"}
	assert.Equal(t, policyprism.EINVALID, policyprism.ErrorCode(missingReport.Validate()))
}
