package models

import "github.com/danielhkuo/regatta-console/csvtable"

// Scoring file domain types, mirroring the backend's .orcsc view.

type EventData struct {
	EventTitle string `json:"EventTitle"`
	StartDate  string `json:"StartDate"`
	EndDate    string `json:"EndDate"`
	Venue      string `json:"Venue"`
	Organizer  string `json:"Organizer"`
}

type ClassData struct {
	ClassID    string `json:"ClassId"`
	ClassName  string `json:"ClassName"`
	YachtClass string `json:"YachtClass"`
}

type RaceData struct {
	RaceID      int    `json:"RaceId"`
	RaceName    string `json:"RaceName"`
	StartTime   string `json:"StartTime"`
	ClassID     string `json:"ClassId"`
	ScoringType string `json:"ScoringType"`
}

// Boat is a fleet entry. Rating fields are pointers: the backend omits
// them for boats without a certificate.
type Boat struct {
	YID       int      `json:"YID"`
	YachtName string   `json:"YachtName"`
	SailNo    *string  `json:"SailNo"`
	ClassID   string   `json:"ClassId"`
	CDL       *float64 `json:"CDL,omitempty"`
	GPH       *float64 `json:"GPH,omitempty"`
}

// ScoringFile is the full parsed view of one .orcsc file as returned
// by the backend.
type ScoringFile struct {
	FilePath string      `json:"filePath,omitempty"`
	Event    EventData   `json:"event"`
	Classes  []ClassData `json:"classes"`
	Races    []RaceData  `json:"races"`
	Fleet    []Boat      `json:"fleet"`
}

// FileInfo describes one stored scoring file. Modified is Unix seconds
// as reported by the backend.
type FileInfo struct {
	Name      string  `json:"name"`
	Path      string  `json:"path"`
	Size      int64   `json:"size"`
	SizeHuman string  `json:"size_human,omitempty"`
	Modified  float64 `json:"modified"`
}

// BackupInfo describes one retained prior version of a scoring file.
type BackupInfo struct {
	Path          string `json:"path"`
	Timestamp     string `json:"timestamp"`
	Filename      string `json:"filename"`
	ChangeSummary string `json:"change_summary"`
}

// Certificate registry types (external, uncontrolled contract).

type Country struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Certificate struct {
	YachtName string `json:"YachtName"`
	SailNo    string `json:"SailNo"`
	CertDate  string `json:"CertDate"`
	CertType  string `json:"CertType"`
	// Raw carries the registry record untouched; the backend consumes
	// it verbatim when adding a boat from a certificate.
	Raw map[string]any `json:"raw,omitempty"`
}

// Request types

type CreateFileRequest struct {
	TemplatePath          string    `json:"template_path"`
	EventData             EventData `json:"event_data"`
	Filename              string    `json:"filename,omitempty"`
	TimezoneOffsetSeconds int       `json:"timezone_offset_seconds,omitempty"`
}

type AddRacesRequest struct {
	Races []RaceData `json:"races"`
}

type AddBoatsRequest struct {
	Boats []csvtable.Boat `json:"boats"`
}

type UpdateBoatRequest struct {
	YID       int     `json:"YID"`
	ClassID   string  `json:"ClassId"`
	YachtName string  `json:"YachtName"`
	SailNo    *string `json:"SailNo"`
}

type AddClassRequest struct {
	ClassData ClassData `json:"class_data"`
}

type RestoreBackupRequest struct {
	BackupPath string `json:"backup_path"`
}

type SetMappingRequest struct {
	YachtName string `json:"yacht_name"`
	SailNo    string `json:"sail_no"`
	ClassID   string `json:"class_id"`
}

type SetFilterRequest struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// Selection actions for the import wizard.
const (
	SelectionToggle = "toggle"
	SelectionAll    = "all"
	SelectionClear  = "clear"
)

type SetSelectionRequest struct {
	Action string `json:"action"`
	Index  int    `json:"index"`
}

type BulkClassChangeRequest struct {
	BoatIDs []int  `json:"boat_ids"`
	ClassID string `json:"class_id"`
}

// Response types

type CreateFileResponse struct {
	FilePath string `json:"file_path"`
}

type UploadFileResponse struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

type ListFilesResponse struct {
	Files []FileInfo `json:"files"`
}

type FileHistoryResponse struct {
	Backups []BackupInfo `json:"backups"`
}

type ImportSessionResponse struct {
	ID            string                `json:"id"`
	Header        []string              `json:"header"`
	RowCount      int                   `json:"row_count"`
	Preview       []csvtable.Row        `json:"preview"`
	ParseErrors   []csvtable.ParseError `json:"parse_errors,omitempty"`
	Mapping       csvtable.Mapping      `json:"mapping"`
	Filter        csvtable.Filter       `json:"filter"`
	Filtered      []csvtable.Row        `json:"filtered"`
	Selected      []int                 `json:"selected"`
	AllSelected   bool                  `json:"all_selected"`
	Indeterminate bool                  `json:"indeterminate"`
	Boats         []csvtable.Boat       `json:"boats"`
}

type DistinctValuesResponse struct {
	Column string   `json:"column"`
	Values []string `json:"values"`
}

type CommitImportResponse struct {
	Imported int `json:"imported"`
}

type FleetViewResponse struct {
	Sort       string `json:"sort"`
	Descending bool   `json:"descending"`
	Fleet      []Boat `json:"fleet"`
}

type RaceViewResponse struct {
	Sort       string     `json:"sort"`
	Descending bool       `json:"descending"`
	Races      []RaceData `json:"races"`
}

// BulkClassChangeResponse reports a bulk update. Error is the first
// failure, if any; Fleet is always the refetched state so partial
// success stays visible.
type BulkClassChangeResponse struct {
	Updated int    `json:"updated"`
	Failed  int    `json:"failed"`
	Error   string `json:"error,omitempty"`
	Fleet   []Boat `json:"fleet"`
}

type CountriesResponse struct {
	Countries []Country `json:"countries"`
}

type CertificatesResponse struct {
	Certificates []Certificate `json:"certificates"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
