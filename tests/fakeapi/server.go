// Package fakeapi is an in-process stand-in for the hosted catalog API. It
// keeps its records in memory and records every request it receives.
package fakeapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joefazee/directory-admin/internal/remote"
	"github.com/joefazee/directory-admin/models"
)

const maxMemory = 32 << 20

// Request is what the server saw of one call.
type Request struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

type failure struct {
	status  int
	message string
}

type Server struct {
	srv *httptest.Server

	mu         sync.Mutex
	categories []models.MainCategory
	subs       map[string][]models.SubCategory
	providers  map[string][]models.ServiceProvider
	requests   []Request
	fail       *failure
}

// New starts a server that is closed when t finishes.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		subs:      make(map[string][]models.SubCategory),
		providers: make(map[string][]models.ServiceProvider),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/categories", s.listCategories)
	mux.HandleFunc("POST /api/categories", s.createCategory)
	mux.HandleFunc("PUT /api/categories/{id}", s.updateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", s.deleteCategory)
	mux.HandleFunc("GET /api/sub-categories/{mainId}", s.listSubCategories)
	mux.HandleFunc("POST /api/sub-categories/{mainId}", s.createSubCategory)
	mux.HandleFunc("PUT /api/sub-categories/{id}", s.updateSubCategory)
	mux.HandleFunc("DELETE /api/sub-categories/{id}", s.deleteSubCategory)
	mux.HandleFunc("GET /api/service-providers/{subId}", s.listProviders)
	mux.HandleFunc("POST /api/service-providers/{subId}", s.createProvider)
	mux.HandleFunc("PUT /api/service-providers/{id}", s.updateProvider)
	mux.HandleFunc("DELETE /api/service-providers/{id}", s.deleteProvider)

	s.srv = httptest.NewServer(s.record(mux))
	t.Cleanup(s.srv.Close)
	return s
}

// Config points a remote client at the server.
func (s *Server) Config() remote.Config {
	return remote.Config{BaseURL: s.srv.URL + "/api", Timeout: 5 * time.Second}
}

// URL is the server root.
func (s *Server) URL() string { return s.srv.URL }

// Requests returns a copy of the calls seen so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent call.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// CountRequests counts calls matching method and path.
func (s *Server) CountRequests(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// FailNext makes the next call answer with status and success:false.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = &failure{status: status, message: message}
}

// SeedCategory stores a main category and returns it with its id.
func (s *Server) SeedCategory(englishName, arabicName string) models.MainCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.MainCategory{ID: newID(), EnglishName: englishName, ArabicName: arabicName, SubCategories: []string{}}
	s.categories = append(s.categories, c)
	return c
}

// SeedSubCategory stores a sub-category under mainID.
func (s *Server) SeedSubCategory(mainID, englishName, arabicName string) models.SubCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := models.SubCategory{ID: newID(), EnglishName: englishName, ArabicName: arabicName, ServiceProviders: []string{}}
	s.subs[mainID] = append(s.subs[mainID], sub)
	s.linkSub(mainID, sub.ID)
	return sub
}

// SeedProvider stores p under subID, assigning ids where missing.
func (s *Server) SeedProvider(subID string, p models.ServiceProvider) models.ServiceProvider {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = newID()
	}
	for i := range p.Images {
		if p.Images[i].ID == "" {
			p.Images[i].ID = newID()
		}
	}
	s.providers[subID] = append(s.providers[subID], p)
	return p
}

// Provider returns the stored provider with id.
func (s *Server) Provider(id string) (models.ServiceProvider, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, i := s.findProvider(id)
	if i < 0 {
		return models.ServiceProvider{}, false
	}
	return s.providers[sub][i], true
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		f := s.fail
		s.fail = nil
		s.mu.Unlock()

		if f != nil {
			writeJSON(w, f.status, map[string]interface{}{"success": false, "message": f.message})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listCategories(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MainCategory, len(s.categories))
	copy(out, s.categories)
	ok(w, http.StatusOK, map[string]interface{}{"categories": out})
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var names models.CategoryNames
	if !decodeNames(w, r, &names) {
		return
	}
	ok(w, http.StatusCreated, s.SeedCategory(names.EnglishName, names.ArabicName))
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	var names models.CategoryNames
	if !decodeNames(w, r, &names) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == r.PathValue("id") {
			s.categories[i].EnglishName = names.EnglishName
			s.categories[i].ArabicName = names.ArabicName
			ok(w, http.StatusOK, s.categories[i])
			return
		}
	}
	notFound(w, "Category")
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := r.PathValue("id")
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i:i], s.categories[i+1:]...)
			delete(s.subs, id)
			ok(w, http.StatusOK, nil)
			return
		}
	}
	notFound(w, "Category")
}

func (s *Server) listSubCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subs := s.subs[r.PathValue("mainId")]
	out := make([]models.SubCategory, len(subs))
	copy(out, subs)
	ok(w, http.StatusOK, map[string]interface{}{"subCategories": out})
}

func (s *Server) createSubCategory(w http.ResponseWriter, r *http.Request) {
	var names models.CategoryNames
	if !decodeNames(w, r, &names) {
		return
	}
	mainID := r.PathValue("mainId")
	s.mu.Lock()
	known := false
	for _, c := range s.categories {
		known = known || c.ID == mainID
	}
	s.mu.Unlock()
	if !known {
		notFound(w, "Main category")
		return
	}
	ok(w, http.StatusCreated, s.SeedSubCategory(mainID, names.EnglishName, names.ArabicName))
}

func (s *Server) updateSubCategory(w http.ResponseWriter, r *http.Request) {
	var names models.CategoryNames
	if !decodeNames(w, r, &names) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for main, subs := range s.subs {
		for i := range subs {
			if subs[i].ID == r.PathValue("id") {
				s.subs[main][i].EnglishName = names.EnglishName
				s.subs[main][i].ArabicName = names.ArabicName
				ok(w, http.StatusOK, s.subs[main][i])
				return
			}
		}
	}
	notFound(w, "Sub-category")
}

func (s *Server) deleteSubCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := r.PathValue("id")
	for main, subs := range s.subs {
		for i := range subs {
			if subs[i].ID == id {
				s.subs[main] = append(subs[:i:i], subs[i+1:]...)
				s.unlinkSub(main, id)
				delete(s.providers, id)
				ok(w, http.StatusOK, nil)
				return
			}
		}
	}
	notFound(w, "Sub-category")
}

func (s *Server) listProviders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps := s.providers[r.PathValue("subId")]
	out := make([]models.ServiceProvider, len(ps))
	copy(out, ps)
	ok(w, http.StatusOK, map[string]interface{}{"serviceProviders": out})
}

var indexedField = regexp.MustCompile(`^(phoneContacts|offers)\[(\d+)\]\[(\w+)\]$`)

func (s *Server) createProvider(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		fail(w, http.StatusBadRequest, "expected multipart form: "+err.Error())
		return
	}
	form := r.MultipartForm

	p := models.ServiceProvider{
		Name:          first(form.Value["name"]),
		Bio:           first(form.Value["bio"]),
		WorkingDays:   form.Value["workingDays"],
		WorkingHour:   first(form.Value["workingHour"]),
		ClosingHour:   first(form.Value["closingHour"]),
		LocationLinks: form.Value["locationLinks"],
	}

	contacts := map[int]*models.PhoneContact{}
	offers := map[int]*models.Offer{}
	for key, values := range form.Value {
		m := indexedField.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		i, _ := strconv.Atoi(m[2])
		switch m[1] {
		case "phoneContacts":
			if contacts[i] == nil {
				contacts[i] = &models.PhoneContact{}
			}
			switch m[3] {
			case "phoneNumber":
				contacts[i].PhoneNumber = first(values)
			case "hasWhatsApp":
				contacts[i].HasWhatsApp = first(values) == "true"
			case "canCall":
				contacts[i].CanCall = first(values) == "true"
			}
		case "offers":
			if offers[i] == nil {
				offers[i] = &models.Offer{}
			}
			switch m[3] {
			case "name":
				offers[i].Name = first(values)
			case "description":
				offers[i].Description = first(values)
			case "imageUrl":
				offers[i].ImageURLs = values
			}
		}
	}
	for i := 0; i < len(contacts); i++ {
		if c, found := contacts[i]; found {
			p.PhoneContacts = append(p.PhoneContacts, *c)
		}
	}
	for i := 0; i < len(offers); i++ {
		if o, found := offers[i]; found {
			p.Offers = append(p.Offers, *o)
		}
	}
	p.Images = storeImages(form.File["image"])

	if p.Name == "" || len(p.WorkingDays) == 0 || len(p.PhoneContacts) == 0 || len(p.LocationLinks) == 0 {
		fail(w, http.StatusBadRequest, "missing required provider fields")
		return
	}
	ok(w, http.StatusCreated, s.SeedProvider(r.PathValue("subId"), p))
}

func (s *Server) updateProvider(w http.ResponseWriter, r *http.Request) {
	var (
		raw    []byte
		images []models.Image
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			fail(w, http.StatusBadRequest, err.Error())
			return
		}
		raw = []byte(first(r.MultipartForm.Value["data"]))
		images = storeImages(r.MultipartForm.File["image"])
	case "application/json":
		raw, _ = io.ReadAll(r.Body)
	default:
		fail(w, http.StatusUnsupportedMediaType, "unsupported content type "+mediaType)
		return
	}

	var patch map[string]json.RawMessage
	if err := json.Unmarshal(raw, &patch); err != nil {
		fail(w, http.StatusBadRequest, "malformed patch: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sub, i := s.findProvider(r.PathValue("id"))
	if i < 0 {
		notFound(w, "Service provider")
		return
	}
	p := s.providers[sub][i]
	if err := applyPatch(&p, patch); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	p.Images = append(p.Images, images...)
	s.providers[sub][i] = p

	ok(w, http.StatusOK, map[string]interface{}{"serviceProvider": p})
}

func (s *Server) deleteProvider(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, i := s.findProvider(r.PathValue("id"))
	if i < 0 {
		notFound(w, "Service provider")
		return
	}
	ps := s.providers[sub]
	s.providers[sub] = append(ps[:i:i], ps[i+1:]...)
	ok(w, http.StatusOK, nil)
}

func applyPatch(p *models.ServiceProvider, patch map[string]json.RawMessage) error {
	fields := map[string]interface{}{
		"name":          &p.Name,
		"bio":           &p.Bio,
		"workingDays":   &p.WorkingDays,
		"workingHour":   &p.WorkingHour,
		"closingHour":   &p.ClosingHour,
		"phoneContacts": &p.PhoneContacts,
		"locationLinks": &p.LocationLinks,
		"offers":        &p.Offers,
	}
	for key, value := range patch {
		if key == "deletedImageIds" {
			var ids []string
			if err := json.Unmarshal(value, &ids); err != nil {
				return err
			}
			p.Images = withoutImages(p.Images, ids)
			continue
		}
		target, known := fields[key]
		if !known {
			return fmt.Errorf("unknown field %q", key)
		}
		if err := json.Unmarshal(value, target); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	return nil
}

func withoutImages(images []models.Image, ids []string) []models.Image {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := images[:0:0]
	for _, img := range images {
		if !drop[img.PublicID] {
			out = append(out, img)
		}
	}
	return out
}

func storeImages(headers []*multipart.FileHeader) []models.Image {
	var out []models.Image
	for _, h := range headers {
		publicID := "providers/" + newID()
		out = append(out, models.Image{
			ID:       newID(),
			PublicID: publicID,
			URL:      "https://images.example/" + publicID + "/" + h.Filename,
		})
	}
	return out
}

func (s *Server) findProvider(id string) (string, int) {
	for sub, ps := range s.providers {
		for i := range ps {
			if ps[i].ID == id {
				return sub, i
			}
		}
	}
	return "", -1
}

func (s *Server) linkSub(mainID, subID string) {
	for i := range s.categories {
		if s.categories[i].ID == mainID {
			s.categories[i].SubCategories = append(s.categories[i].SubCategories, subID)
		}
	}
}

func (s *Server) unlinkSub(mainID, subID string) {
	for i := range s.categories {
		if s.categories[i].ID != mainID {
			continue
		}
		kept := s.categories[i].SubCategories[:0:0]
		for _, id := range s.categories[i].SubCategories {
			if id != subID {
				kept = append(kept, id)
			}
		}
		s.categories[i].SubCategories = kept
	}
}

func decodeNames(w http.ResponseWriter, r *http.Request, names *models.CategoryNames) bool {
	if err := json.NewDecoder(r.Body).Decode(names); err != nil {
		fail(w, http.StatusBadRequest, "malformed body")
		return false
	}
	if names.EnglishName == "" || names.ArabicName == "" {
		fail(w, http.StatusBadRequest, "englishName and arabicName are required")
		return false
	}
	return true
}

func ok(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, map[string]interface{}{"success": true, "data": data})
}

func fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"success": false, "message": message})
}

func notFound(w http.ResponseWriter, resource string) {
	fail(w, http.StatusNotFound, resource+" not found")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func newID() string {
	return primitive.NewObjectID().Hex()
}
