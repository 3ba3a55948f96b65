// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"io"
	"strings"

	"github.com/danielhkuo/regatta-console/csvtable"
	"github.com/danielhkuo/regatta-console/models"
)

// FakeBackend is a scripted scoring backend for handler tests. Each
// hook overrides one call; unset hooks succeed with zero values.
type FakeBackend struct {
	ListFilesFunc       func(ctx context.Context) ([]models.FileInfo, error)
	GetFileFunc         func(ctx context.Context, filePath string) (*models.ScoringFile, error)
	CreateFileFunc      func(ctx context.Context, req models.CreateFileRequest) (string, error)
	UploadFileFunc      func(ctx context.Context, filename string, size int64, r io.Reader) (*models.UploadFileResponse, error)
	ReplaceFileFunc     func(ctx context.Context, filePath, filename string, size int64, r io.Reader) (*models.UploadFileResponse, error)
	DownloadFileFunc    func(ctx context.Context, filename string) (io.ReadCloser, error)
	DeleteFileFunc      func(ctx context.Context, filePath string) error
	AddRacesFunc        func(ctx context.Context, filePath string, races []models.RaceData) error
	DeleteRaceFunc      func(ctx context.Context, filePath string, raceID int) error
	AddBoatsFunc        func(ctx context.Context, filePath string, boats []csvtable.Boat) error
	AddBoatFromCertFunc func(ctx context.Context, filePath, classID string, cert map[string]any) error
	UpdateBoatFunc      func(ctx context.Context, filePath string, req models.UpdateBoatRequest) error
	DeleteBoatFunc      func(ctx context.Context, filePath string, boatID int) error
	AddClassFunc        func(ctx context.Context, filePath string, class models.ClassData) error
	DeleteClassFunc     func(ctx context.Context, filePath, classID string) error
	ListTemplatesFunc   func(ctx context.Context) ([]string, error)
	FileHistoryFunc     func(ctx context.Context, filePath string) ([]models.BackupInfo, error)
	RestoreBackupFunc   func(ctx context.Context, filePath, backupPath string) error
}

func (f *FakeBackend) ListFiles(ctx context.Context) ([]models.FileInfo, error) {
	if f.ListFilesFunc != nil {
		return f.ListFilesFunc(ctx)
	}
	return []models.FileInfo{}, nil
}

func (f *FakeBackend) GetFile(ctx context.Context, filePath string) (*models.ScoringFile, error) {
	if f.GetFileFunc != nil {
		return f.GetFileFunc(ctx, filePath)
	}
	return &models.ScoringFile{FilePath: filePath}, nil
}

func (f *FakeBackend) CreateFile(ctx context.Context, req models.CreateFileRequest) (string, error) {
	if f.CreateFileFunc != nil {
		return f.CreateFileFunc(ctx, req)
	}
	return req.Filename, nil
}

func (f *FakeBackend) UploadFile(ctx context.Context, filename string, size int64, r io.Reader) (*models.UploadFileResponse, error) {
	if f.UploadFileFunc != nil {
		return f.UploadFileFunc(ctx, filename, size, r)
	}
	return &models.UploadFileResponse{Filename: filename, Path: filename}, nil
}

func (f *FakeBackend) ReplaceFile(ctx context.Context, filePath, filename string, size int64, r io.Reader) (*models.UploadFileResponse, error) {
	if f.ReplaceFileFunc != nil {
		return f.ReplaceFileFunc(ctx, filePath, filename, size, r)
	}
	return &models.UploadFileResponse{Filename: filename, Path: filePath}, nil
}

func (f *FakeBackend) DownloadFile(ctx context.Context, filename string) (io.ReadCloser, error) {
	if f.DownloadFileFunc != nil {
		return f.DownloadFileFunc(ctx, filename)
	}
	return io.NopCloser(strings.NewReader("")), nil
}

func (f *FakeBackend) DeleteFile(ctx context.Context, filePath string) error {
	if f.DeleteFileFunc != nil {
		return f.DeleteFileFunc(ctx, filePath)
	}
	return nil
}

func (f *FakeBackend) AddRaces(ctx context.Context, filePath string, races []models.RaceData) error {
	if f.AddRacesFunc != nil {
		return f.AddRacesFunc(ctx, filePath, races)
	}
	return nil
}

func (f *FakeBackend) DeleteRace(ctx context.Context, filePath string, raceID int) error {
	if f.DeleteRaceFunc != nil {
		return f.DeleteRaceFunc(ctx, filePath, raceID)
	}
	return nil
}

func (f *FakeBackend) AddBoats(ctx context.Context, filePath string, boats []csvtable.Boat) error {
	if f.AddBoatsFunc != nil {
		return f.AddBoatsFunc(ctx, filePath, boats)
	}
	return nil
}

func (f *FakeBackend) AddBoatFromCert(ctx context.Context, filePath, classID string, cert map[string]any) error {
	if f.AddBoatFromCertFunc != nil {
		return f.AddBoatFromCertFunc(ctx, filePath, classID, cert)
	}
	return nil
}

func (f *FakeBackend) UpdateBoat(ctx context.Context, filePath string, req models.UpdateBoatRequest) error {
	if f.UpdateBoatFunc != nil {
		return f.UpdateBoatFunc(ctx, filePath, req)
	}
	return nil
}

func (f *FakeBackend) DeleteBoat(ctx context.Context, filePath string, boatID int) error {
	if f.DeleteBoatFunc != nil {
		return f.DeleteBoatFunc(ctx, filePath, boatID)
	}
	return nil
}

func (f *FakeBackend) AddClass(ctx context.Context, filePath string, class models.ClassData) error {
	if f.AddClassFunc != nil {
		return f.AddClassFunc(ctx, filePath, class)
	}
	return nil
}

func (f *FakeBackend) DeleteClass(ctx context.Context, filePath, classID string) error {
	if f.DeleteClassFunc != nil {
		return f.DeleteClassFunc(ctx, filePath, classID)
	}
	return nil
}

func (f *FakeBackend) ListTemplates(ctx context.Context) ([]string, error) {
	if f.ListTemplatesFunc != nil {
		return f.ListTemplatesFunc(ctx)
	}
	return []string{}, nil
}

func (f *FakeBackend) FileHistory(ctx context.Context, filePath string) ([]models.BackupInfo, error) {
	if f.FileHistoryFunc != nil {
		return f.FileHistoryFunc(ctx, filePath)
	}
	return []models.BackupInfo{}, nil
}

func (f *FakeBackend) RestoreBackup(ctx context.Context, filePath, backupPath string) error {
	if f.RestoreBackupFunc != nil {
		return f.RestoreBackupFunc(ctx, filePath, backupPath)
	}
	return nil
}

// FakeRegistry is a scripted certificate registry for handler tests.
type FakeRegistry struct {
	CountriesFunc       func(ctx context.Context) ([]models.Country, error)
	CertificatesFunc    func(ctx context.Context, countryID, family string) ([]models.Certificate, error)
	AllCertificatesFunc func(ctx context.Context, countryID string) ([]models.Certificate, error)
}

func (f *FakeRegistry) Countries(ctx context.Context) ([]models.Country, error) {
	if f.CountriesFunc != nil {
		return f.CountriesFunc(ctx)
	}
	return []models.Country{}, nil
}

func (f *FakeRegistry) Certificates(ctx context.Context, countryID, family string) ([]models.Certificate, error) {
	if f.CertificatesFunc != nil {
		return f.CertificatesFunc(ctx, countryID, family)
	}
	return []models.Certificate{}, nil
}

func (f *FakeRegistry) AllCertificates(ctx context.Context, countryID string) ([]models.Certificate, error) {
	if f.AllCertificatesFunc != nil {
		return f.AllCertificatesFunc(ctx, countryID)
	}
	return []models.Certificate{}, nil
}
