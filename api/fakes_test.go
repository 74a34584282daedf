package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/avelez/portfolio-backend/database"
	"github.com/avelez/portfolio-backend/models"
)

// fakeProjectStore records gateway calls so tests can assert both results and
// whether the store was touched at all.
type fakeProjectStore struct {
	projects []models.Project

	findAllErr error
	addErr     error
	updateRows int64
	updateErr  error
	deleteRows int64
	deleteErr  error

	addCalls    int
	updateCalls int
	deleteCalls int

	lastOrder    database.Ordering
	lastAdded    *models.Project
	lastUpdateID uuid.UUID
	lastUpdated  *models.Project
	lastDeleteID uuid.UUID
}

func (f *fakeProjectStore) FindAll(order database.Ordering) ([]models.Project, error) {
	f.lastOrder = order
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	return f.projects, nil
}

func (f *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			return &f.projects[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeProjectStore) Add(project *models.Project) error {
	f.addCalls++
	if f.addErr != nil {
		return f.addErr
	}
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	f.lastAdded = project
	f.projects = append(f.projects, *project)
	return nil
}

func (f *fakeProjectStore) UpdateByID(id uuid.UUID, project *models.Project) (int64, error) {
	f.updateCalls++
	f.lastUpdateID = id
	f.lastUpdated = project
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	return f.updateRows, nil
}

func (f *fakeProjectStore) DeleteByID(id uuid.UUID) (int64, error) {
	f.deleteCalls++
	f.lastDeleteID = id
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	return f.deleteRows, nil
}

type fakeMessageStore struct {
	addErr    error
	addCalls  int
	lastAdded *models.Message
}

func (f *fakeMessageStore) Add(message *models.Message) error {
	f.addCalls++
	if f.addErr != nil {
		return f.addErr
	}
	f.lastAdded = message
	return nil
}

type fakeNotifier struct {
	notifyErr   error
	notifyCalls int
}

func (f *fakeNotifier) NotifyNewMessage(message *models.Message) error {
	f.notifyCalls++
	return f.notifyErr
}

// postForm submits a form-encoded request to a handler.
func postForm(t *testing.T, handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func getRequest(t *testing.T, handler http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func requireFailure(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, rec.Code)

	var failure FailureResponse
	require.NoError(t, jsonDecode(rec, &failure))
	require.True(t, failure.Error)
	require.Equal(t, message, failure.Message)
}

func jsonDecode(rec *httptest.ResponseRecorder, into any) error {
	return json.Unmarshal(rec.Body.Bytes(), into)
}
