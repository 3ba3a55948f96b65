// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Mirrors of the scoring backend's view of an .orcsc file:

  - EventData: title, dates, venue, organizer
  - ClassData: competition category
  - RaceData: race row with start time and scoring type
  - Boat: fleet entry keyed by YID, optional rating fields
  - ScoringFile: event + classes + races + fleet
  - FileInfo / BackupInfo: stored files and their retained versions

Registry types (Country, Certificate) follow the public ORC database's
shapes and are treated as an uncontrolled external contract.

# Request Types

Types for parsing incoming JSON:

  - CreateFileRequest, AddRacesRequest, AddBoatsRequest
  - UpdateBoatRequest, AddClassRequest, RestoreBackupRequest
  - SetMappingRequest, SetFilterRequest, SetSelectionRequest
  - BulkClassChangeRequest

# Response Types

Types for JSON responses:

  - ListFilesResponse, FileHistoryResponse
  - ImportSessionResponse, DistinctValuesResponse, CommitImportResponse
  - FleetViewResponse, RaceViewResponse, BulkClassChangeResponse
  - CountriesResponse, CertificatesResponse
  - ErrorResponse: error, message

# Constants

Wizard selection actions:

	SelectionToggle = "toggle"
	SelectionAll    = "all"
	SelectionClear  = "clear"
*/
package models
