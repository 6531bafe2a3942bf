package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/internal/domain"
)

// In-memory repository fakes. They return gorm.ErrRecordNotFound like the
// real ones so the services' error classification is exercised for real.

type fakeProfileRepo struct {
	profiles map[string]*domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*domain.Profile{}}
}

func (r *fakeProfileRepo) Create(p *domain.Profile) (*domain.Profile, error) {
	cp := *p
	r.profiles[cp.ID] = &cp
	return &cp, nil
}

func (r *fakeProfileRepo) FindByID(id string) (*domain.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) FindByEmail(email string) (*domain.Profile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfileRepo) Save(p *domain.Profile) error {
	cp := *p
	r.profiles[cp.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) List(limit, offset int) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProfileRepo) Delete(id string) error {
	delete(r.profiles, id)
	return nil
}

type fakeUniversityRepo struct {
	unis map[string]*domain.University
}

func newFakeUniversityRepo() *fakeUniversityRepo {
	return &fakeUniversityRepo{unis: map[string]*domain.University{}}
}

func (r *fakeUniversityRepo) Create(u *domain.University) error {
	if u.ID == "" {
		u.ID = fmt.Sprintf("uni-%d", len(r.unis)+1)
	}
	cp := *u
	r.unis[cp.ID] = &cp
	return nil
}

func (r *fakeUniversityRepo) FindByID(id string) (*domain.University, error) {
	u, ok := r.unis[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUniversityRepo) List() ([]domain.University, error) {
	var out []domain.University
	for _, u := range r.unis {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUniversityRepo) Save(u *domain.University) error {
	cp := *u
	r.unis[cp.ID] = &cp
	return nil
}

func (r *fakeUniversityRepo) Delete(id string) error {
	delete(r.unis, id)
	return nil
}

type fakeProgramRepo struct {
	programs map[string]*domain.Program
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{programs: map[string]*domain.Program{}}
}

func (r *fakeProgramRepo) Create(p *domain.Program) error {
	if p.ID == "" {
		p.ID = fmt.Sprintf("prog-%d", len(r.programs)+1)
	}
	cp := *p
	r.programs[cp.ID] = &cp
	return nil
}

func (r *fakeProgramRepo) FindByID(id string) (*domain.Program, error) {
	p, ok := r.programs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProgramRepo) List() ([]domain.Program, error) {
	var out []domain.Program
	for _, p := range r.programs {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProgramRepo) ListByUniversity(universityID string) ([]domain.Program, error) {
	var out []domain.Program
	for _, p := range r.programs {
		if p.UniversityID == universityID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProgramRepo) Save(p *domain.Program) error {
	cp := *p
	r.programs[cp.ID] = &cp
	return nil
}

func (r *fakeProgramRepo) Delete(id string) error {
	delete(r.programs, id)
	return nil
}

type fakeApplicationRepo struct {
	apps map[string]*domain.Application
	// last credential write-back passed through the transactional create
	lastWriteback map[string]any
	// simulates the profile row missing inside the transaction
	profileMissing bool
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[string]*domain.Application{}}
}

func (r *fakeApplicationRepo) CreateWithCredentialWriteback(app *domain.Application, credentialUpdates map[string]any) error {
	if r.profileMissing {
		return gorm.ErrRecordNotFound
	}
	r.lastWriteback = credentialUpdates
	if app.ID == "" {
		app.ID = fmt.Sprintf("app-%d", len(r.apps)+1)
	}
	cp := *app
	r.apps[cp.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*domain.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApplicationRepo) ListByStudent(studentID string) ([]domain.Application, error) {
	var out []domain.Application
	for _, a := range r.apps {
		if a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListAll(limit, offset int) ([]domain.Application, error) {
	var out []domain.Application
	for _, a := range r.apps {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeApplicationRepo) Save(a *domain.Application) error {
	cp := *a
	r.apps[cp.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) Delete(id string) error {
	delete(r.apps, id)
	return nil
}

type fakeAuditRepo struct {
	entries []domain.ApplicationStatusAudit
}

func (r *fakeAuditRepo) Create(e *domain.ApplicationStatusAudit) error {
	r.entries = append(r.entries, *e)
	return nil
}

func (r *fakeAuditRepo) ListByApplication(applicationID string) ([]domain.ApplicationStatusAudit, error) {
	var out []domain.ApplicationStatusAudit
	for _, e := range r.entries {
		if e.ApplicationID == applicationID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeDocumentRepo struct {
	docs map[string]*domain.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[string]*domain.Document{}}
}

func (r *fakeDocumentRepo) Create(d *domain.Document) error {
	if d.ID == "" {
		d.ID = fmt.Sprintf("doc-%d", len(r.docs)+1)
	}
	cp := *d
	r.docs[cp.ID] = &cp
	return nil
}

func (r *fakeDocumentRepo) FindByID(id string) (*domain.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDocumentRepo) ListByStudent(studentID string) ([]domain.Document, error) {
	var out []domain.Document
	for _, d := range r.docs {
		if d.StudentID == studentID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) Delete(id string) error {
	delete(r.docs, id)
	return nil
}

type fakeRecordRepo struct {
	records map[string]*domain.AcademicRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: map[string]*domain.AcademicRecord{}}
}

func (r *fakeRecordRepo) Create(rec *domain.AcademicRecord) error {
	if rec.ID == "" {
		rec.ID = fmt.Sprintf("rec-%d", len(r.records)+1)
	}
	cp := *rec
	r.records[cp.ID] = &cp
	return nil
}

func (r *fakeRecordRepo) FindByID(id string) (*domain.AcademicRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeRecordRepo) ListByStudent(studentID string) ([]domain.AcademicRecord, error) {
	var out []domain.AcademicRecord
	for _, rec := range r.records {
		if rec.StudentID == studentID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *fakeRecordRepo) Save(rec *domain.AcademicRecord) error {
	cp := *rec
	r.records[cp.ID] = &cp
	return nil
}

func (r *fakeRecordRepo) Delete(id string) error {
	delete(r.records, id)
	return nil
}

type fakeEssayRepo struct {
	essays    map[string]*domain.Essay
	createErr error
}

func newFakeEssayRepo() *fakeEssayRepo {
	return &fakeEssayRepo{essays: map[string]*domain.Essay{}}
}

func (r *fakeEssayRepo) Create(e *domain.Essay) error {
	if r.createErr != nil {
		return r.createErr
	}
	if e.ID == "" {
		e.ID = fmt.Sprintf("essay-%d", len(r.essays)+1)
	}
	cp := *e
	r.essays[cp.ID] = &cp
	return nil
}

func (r *fakeEssayRepo) FindByID(id string) (*domain.Essay, error) {
	e, ok := r.essays[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEssayRepo) ListByApplication(applicationID string) ([]domain.Essay, error) {
	var out []domain.Essay
	for _, e := range r.essays {
		if e.ApplicationID == applicationID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEssayRepo) Save(e *domain.Essay) error {
	cp := *e
	r.essays[cp.ID] = &cp
	return nil
}

func (r *fakeEssayRepo) Delete(id string) error {
	delete(r.essays, id)
	return nil
}

type fakeProducer struct {
	keys   []string
	values [][]byte
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	p.keys = append(p.keys, string(key))
	p.values = append(p.values, value)
	return nil
}
