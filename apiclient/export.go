package apiclient

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// ExportLevel is the level at which a FHIR bulk export is requested.
type ExportLevel int

const (
	// PatientExport exports data of all patients the client has access to.
	PatientExport ExportLevel = iota
	// GroupExport exports data of the patients in a group.
	GroupExport
	// SystemExport exports all data of the system.
	SystemExport
)

var allExportLevels = []ExportLevel{PatientExport, GroupExport, SystemExport}

// ErrExportDisabled is returned when an export level has no endpoint configured.
var ErrExportDisabled = errors.New("export endpoint is disabled")

func (l ExportLevel) String() string {
	switch l {
	case PatientExport:
		return "patient"
	case GroupExport:
		return "group"
	case SystemExport:
		return "system"
	}
	return fmt.Sprintf("INVALID(%d)", int(l))
}

// exportEndpoint returns the name of the field holding the endpoint for the given level, and its value.
func (c Config) exportEndpoint(level ExportLevel) (string, string) {
	switch level {
	case PatientExport:
		return "patientExportEndpoint", c.PatientExportEndpoint
	case GroupExport:
		return "groupExportEndpoint", c.GroupExportEndpoint
	case SystemExport:
		return "systemExportEndpoint", c.SystemExportEndpoint
	}
	return "", ""
}

// ExportLevels returns the export levels that have an endpoint configured.
func (c Config) ExportLevels() []ExportLevel {
	var result []ExportLevel
	for _, level := range allExportLevels {
		if _, endpoint := c.exportEndpoint(level); endpoint != "" {
			result = append(result, level)
		}
	}
	return result
}

// ExportURL returns the absolute URL to kick off a bulk export at the given level.
// If since is not zero, it's passed in the incremental sync parameter (SinceParam).
func (c Config) ExportURL(level ExportLevel, since time.Time) (*url.URL, error) {
	field, endpoint := c.exportEndpoint(level)
	if field == "" {
		return nil, fmt.Errorf("unknown export level: %s", level)
	}
	if endpoint == "" {
		return nil, fmt.Errorf("%s export: %w", level, ErrExportDisabled)
	}
	if c.BaseURL == "" {
		return nil, fmt.Errorf("%s export: base URL is not configured", level)
	}
	result, err := url.Parse(c.BaseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid %s export URL: %w", level, err)
	}
	if !since.IsZero() {
		query := result.Query()
		query.Set(c.SinceParam, since.UTC().Format(time.RFC3339))
		result.RawQuery = query.Encode()
	}
	return result, nil
}
