package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
)

// ── In-memory Repository Stubs ────────────────────────────────────────────────
//
// Every stub returns a nil *gorm.DB from DB(), which makes runTx call the
// callback directly — services run their transactional paths without a
// database.

type stubAttributeRepo struct {
	mu         sync.Mutex
	byCode     map[string]*model.Attribute
	groups     map[string]*model.AttributeGroup
	options    []*model.AttributeOption
	categoryAs []*model.CategoryAttribute
}

func newStubAttributeRepo() *stubAttributeRepo {
	return &stubAttributeRepo{
		byCode: make(map[string]*model.Attribute),
		groups: make(map[string]*model.AttributeGroup),
	}
}

func (r *stubAttributeRepo) Create(_ context.Context, a *model.Attribute) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byCode[a.Code]; ok {
		return gorm.ErrDuplicatedKey
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.byCode[a.Code] = a
	return nil
}

func (r *stubAttributeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Attribute, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byCode {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAttributeRepo) FindByCode(_ context.Context, code string) (*model.Attribute, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byCode[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubAttributeRepo) List(_ context.Context) ([]model.Attribute, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Attribute, 0, len(r.byCode))
	for _, a := range r.byCode {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *stubAttributeRepo) CreateGroup(_ context.Context, g *model.AttributeGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[g.Code]; ok {
		return gorm.ErrDuplicatedKey
	}
	g.ID = uuid.New()
	r.groups[g.Code] = g
	return nil
}

func (r *stubAttributeRepo) FindGroupByCode(_ context.Context, code string) (*model.AttributeGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.groups[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (r *stubAttributeRepo) CreateOption(_ context.Context, o *model.AttributeOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.options {
		if existing.AttributeID == o.AttributeID && existing.Value == o.Value {
			return gorm.ErrDuplicatedKey
		}
	}
	o.ID = uuid.New()
	r.options = append(r.options, o)
	return nil
}

func (r *stubAttributeRepo) FindOption(_ context.Context, attributeID uuid.UUID, value string) (*model.AttributeOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.options {
		if o.AttributeID == attributeID && o.Value == value {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAttributeRepo) ListOptions(_ context.Context, attributeID uuid.UUID) ([]model.AttributeOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.AttributeOption
	for _, o := range r.options {
		if o.AttributeID == attributeID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubAttributeRepo) UpsertCategoryAttribute(_ context.Context, ca *model.CategoryAttribute) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.categoryAs {
		if existing.CategoryID == ca.CategoryID && existing.AttributeID == ca.AttributeID {
			existing.Required = ca.Required
			existing.SortOrder = ca.SortOrder
			return nil
		}
	}
	ca.ID = uuid.New()
	r.categoryAs = append(r.categoryAs, ca)
	return nil
}

func (r *stubAttributeRepo) ListCategoryAttributes(_ context.Context, categoryID uuid.UUID) ([]model.CategoryAttribute, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.CategoryAttribute
	for _, ca := range r.categoryAs {
		if ca.CategoryID == categoryID {
			copied := *ca
			for _, a := range r.byCode {
				if a.ID == ca.AttributeID {
					copied.Attribute = a
					break
				}
			}
			out = append(out, copied)
		}
	}
	return out, nil
}

func (r *stubAttributeRepo) DeleteOptionsTx(_ *gorm.DB, attributeID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.options[:0]
	for _, o := range r.options {
		if o.AttributeID != attributeID {
			kept = append(kept, o)
		}
	}
	r.options = kept
	return nil
}

func (r *stubAttributeRepo) DeleteAssignmentsTx(_ *gorm.DB, attributeID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.categoryAs[:0]
	for _, ca := range r.categoryAs {
		if ca.AttributeID != attributeID {
			kept = append(kept, ca)
		}
	}
	r.categoryAs = kept
	return nil
}

func (r *stubAttributeRepo) DeleteTx(_ *gorm.DB, attributeID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for code, a := range r.byCode {
		if a.ID == attributeID {
			delete(r.byCode, code)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubAttributeRepo) DB() *gorm.DB { return nil }

// ── Value repo stub ───────────────────────────────────────────────────────────

type valueKey struct {
	part   string
	attrID uuid.UUID
}

type stubValueRepo struct {
	mu   sync.Mutex
	rows map[valueKey]*model.ProductAttributeValue
	// rowLocks emulate SELECT ... FOR UPDATE: FindForUpdateTx on an existing
	// row takes the key lock and SaveTx releases it, so concurrent writers on
	// the same pair serialize the way row locks serialize them on Postgres.
	// An absent row takes no lock, matching FOR UPDATE semantics there too.
	rowLocks map[valueKey]*sync.Mutex
	// attrsByID / optionsByID emulate GORM preloads on reads.
	attrsByID   map[uuid.UUID]*model.Attribute
	optionsByID map[uuid.UUID]*model.AttributeOption
}

func newStubValueRepo() *stubValueRepo {
	return &stubValueRepo{
		rows:        make(map[valueKey]*model.ProductAttributeValue),
		rowLocks:    make(map[valueKey]*sync.Mutex),
		attrsByID:   make(map[uuid.UUID]*model.Attribute),
		optionsByID: make(map[uuid.UUID]*model.AttributeOption),
	}
}

func (r *stubValueRepo) keyLock(key valueKey) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.rowLocks[key]
	if !ok {
		l = &sync.Mutex{}
		r.rowLocks[key] = l
	}
	return l
}

// get is a lock-free snapshot for test assertions; it never takes the row lock.
func (r *stubValueRepo) get(partNumber string, attributeID uuid.UUID) (*model.ProductAttributeValue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.rows[valueKey{partNumber, attributeID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *stubValueRepo) FindForUpdateTx(_ *gorm.DB, partNumber string, attributeID uuid.UUID) (*model.ProductAttributeValue, error) {
	key := valueKey{partNumber, attributeID}
	l := r.keyLock(key)
	l.Lock()
	r.mu.Lock()
	v, ok := r.rows[key]
	if !ok {
		r.mu.Unlock()
		l.Unlock()
		return nil, gorm.ErrRecordNotFound
	}
	copied := *v
	r.mu.Unlock()
	return &copied, nil
}

func (r *stubValueRepo) CreateTx(_ *gorm.DB, v *model.ProductAttributeValue) error {
	key := valueKey{v.PartNumber, v.AttributeID}
	l := r.keyLock(key)
	l.Lock()
	defer l.Unlock()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	v.ID = uuid.New()
	v.CreatedAt = time.Now()
	v.UpdatedAt = v.CreatedAt
	copied := *v
	r.rows[key] = &copied
	return nil
}

// SaveTx releases the row lock taken by FindForUpdateTx.
func (r *stubValueRepo) SaveTx(_ *gorm.DB, v *model.ProductAttributeValue) error {
	key := valueKey{v.PartNumber, v.AttributeID}
	v.UpdatedAt = time.Now()
	copied := *v
	r.mu.Lock()
	r.rows[key] = &copied
	r.mu.Unlock()
	r.keyLock(key).Unlock()
	return nil
}

func (r *stubValueRepo) FindByKey(_ context.Context, partNumber string, attributeID uuid.UUID) (*model.ProductAttributeValue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.rows[valueKey{partNumber, attributeID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *v
	r.preload(&copied)
	return &copied, nil
}

func (r *stubValueRepo) ListByPart(_ context.Context, partNumber string) ([]model.ProductAttributeValue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.ProductAttributeValue
	for key, v := range r.rows {
		if key.part == partNumber {
			copied := *v
			r.preload(&copied)
			out = append(out, copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AttributeID.String() < out[j].AttributeID.String()
	})
	return out, nil
}

func (r *stubValueRepo) preload(v *model.ProductAttributeValue) {
	if a, ok := r.attrsByID[v.AttributeID]; ok {
		v.Attribute = a
	}
	if v.OptionID != nil {
		if o, ok := r.optionsByID[*v.OptionID]; ok {
			v.Option = o
		}
	}
}

func (r *stubValueRepo) AttributeIDsWithValue(_ context.Context, partNumber string) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []uuid.UUID
	for key := range r.rows {
		if key.part == partNumber {
			out = append(out, key.attrID)
		}
	}
	return out, nil
}

func (r *stubValueRepo) DeleteByPartTx(_ *gorm.DB, partNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.rows {
		if key.part == partNumber {
			delete(r.rows, key)
		}
	}
	return nil
}

func (r *stubValueRepo) DeleteByAttributeTx(_ *gorm.DB, attributeID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.rows {
		if key.attrID == attributeID {
			delete(r.rows, key)
		}
	}
	return nil
}

func (r *stubValueRepo) DB() *gorm.DB { return nil }

// ── Product repo stub ─────────────────────────────────────────────────────────

type stubProductRepo struct {
	mu    sync.Mutex
	parts map[string]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{parts: make(map[string]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parts[p.PartNumber]; ok {
		return gorm.ErrDuplicatedKey
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.parts[p.PartNumber] = p
	return nil
}

func (r *stubProductRepo) FindByPartNumber(_ context.Context, partNumber string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.parts[partNumber]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindFull(_ context.Context, partNumber string) (*model.Product, error) {
	return r.FindByPartNumber(context.Background(), partNumber)
}

func (r *stubProductRepo) Exists(_ context.Context, partNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.parts[partNumber]
	return ok, nil
}

func (r *stubProductRepo) List(_ context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Product
	for _, p := range r.parts {
		if filter.PartNumber != "" && p.PartNumber != filter.PartNumber {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PartNumber < out[j].PartNumber })
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parts[p.PartNumber] = p
	return nil
}

func (r *stubProductRepo) DeleteTx(_ *gorm.DB, partNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.parts, partNumber)
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

// ── Price repo stub ───────────────────────────────────────────────────────────

type stubPriceRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   []model.Price
}

func newStubPriceRepo() *stubPriceRepo { return &stubPriceRepo{nextID: 1} }

func (r *stubPriceRepo) Create(_ context.Context, p *model.Price) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if existing.PartNumber == p.PartNumber && existing.EffectiveDate.Equal(p.EffectiveDate) {
			return gorm.ErrDuplicatedKey
		}
	}
	p.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, *p)
	return nil
}

// insertDuplicate bypasses the unique check, to exercise the id tie-break.
func (r *stubPriceRepo) insertDuplicate(p model.Price) uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, p)
	return p.ID
}

func (r *stubPriceRepo) FindCurrent(_ context.Context, partNumber string, asOf *time.Time) (*model.Price, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var best *model.Price
	for i := range r.rows {
		row := &r.rows[i]
		if row.PartNumber != partNumber {
			continue
		}
		if asOf != nil && row.EffectiveDate.After(*asOf) {
			continue
		}
		if best == nil ||
			row.EffectiveDate.After(best.EffectiveDate) ||
			(row.EffectiveDate.Equal(best.EffectiveDate) && row.ID > best.ID) {
			best = row
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *best
	return &copied, nil
}

func (r *stubPriceRepo) ListByPart(_ context.Context, partNumber string) ([]model.Price, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Price
	for _, row := range r.rows {
		if row.PartNumber == partNumber {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EffectiveDate.Before(out[j].EffectiveDate) })
	return out, nil
}

func (r *stubPriceRepo) DeleteByPartTx(_ *gorm.DB, partNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.PartNumber != partNumber {
			kept = append(kept, row)
		}
	}
	r.rows = kept
	return nil
}

func (r *stubPriceRepo) DB() *gorm.DB { return nil }

// ── Variant repo stub ─────────────────────────────────────────────────────────

type stubVariantRepo struct {
	mu    sync.Mutex
	edges map[string]*model.ProductVariant // keyed by variant part number
}

func newStubVariantRepo() *stubVariantRepo {
	return &stubVariantRepo{edges: make(map[string]*model.ProductVariant)}
}

func (r *stubVariantRepo) Create(_ context.Context, v *model.ProductVariant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.edges[v.VariantPartNumber]; ok {
		return gorm.ErrDuplicatedKey
	}
	v.ID = uuid.New()
	r.edges[v.VariantPartNumber] = v
	return nil
}

func (r *stubVariantRepo) FindByVariant(_ context.Context, variantPartNumber string) (*model.ProductVariant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.edges[variantPartNumber]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVariantRepo) ListByParent(_ context.Context, parentPartNumber string) ([]model.ProductVariant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.ProductVariant
	for _, v := range r.edges {
		if v.ParentPartNumber == parentPartNumber {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VariantPartNumber < out[j].VariantPartNumber })
	return out, nil
}

func (r *stubVariantRepo) HasChildren(_ context.Context, partNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.edges {
		if v.ParentPartNumber == partNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubVariantRepo) Delete(_ context.Context, variantPartNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.edges, variantPartNumber)
	return nil
}

func (r *stubVariantRepo) DeleteByPartTx(_ *gorm.DB, partNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, v := range r.edges {
		if v.VariantPartNumber == partNumber || v.ParentPartNumber == partNumber {
			delete(r.edges, key)
		}
	}
	return nil
}

func (r *stubVariantRepo) DB() *gorm.DB { return nil }

// ── Media repo stub ───────────────────────────────────────────────────────────

type stubMediaRepo struct {
	mu   sync.Mutex
	seq  int
	rows []mediaRow
}

type mediaRow struct {
	seq   int
	media model.ProductMedia
}

func newStubMediaRepo() *stubMediaRepo { return &stubMediaRepo{} }

func (r *stubMediaRepo) Create(_ context.Context, m *model.ProductMedia) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = uuid.New()
	r.seq++
	r.rows = append(r.rows, mediaRow{seq: r.seq, media: *m})
	return nil
}

func (r *stubMediaRepo) ListByPart(_ context.Context, partNumber string) ([]model.ProductMedia, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.ProductMedia
	for _, row := range r.rows {
		if row.media.PartNumber == partNumber {
			out = append(out, row.media)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *stubMediaRepo) FirstByType(_ context.Context, partNumber string, mediaType model.MediaType) (*model.ProductMedia, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var best *mediaRow
	for i := range r.rows {
		row := &r.rows[i]
		if row.media.PartNumber != partNumber || row.media.MediaType != mediaType {
			continue
		}
		if best == nil ||
			row.media.Position < best.media.Position ||
			(row.media.Position == best.media.Position && row.seq < best.seq) {
			best = row
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := best.media
	return &copied, nil
}

func (r *stubMediaRepo) Delete(_ context.Context, partNumber string, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	matched := false
	for _, row := range r.rows {
		if row.media.PartNumber == partNumber && row.media.ID == id {
			matched = true
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	if !matched {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *stubMediaRepo) DeleteByPartTx(_ *gorm.DB, partNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.media.PartNumber != partNumber {
			kept = append(kept, row)
		}
	}
	r.rows = kept
	return nil
}

func (r *stubMediaRepo) DB() *gorm.DB { return nil }

// ── Category repo stub ────────────────────────────────────────────────────────

type stubCategoryRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byID: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Code == c.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.byID[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByCode(_ context.Context, code string) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byID {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) DB() *gorm.DB { return nil }

// ── Reference repo stub ───────────────────────────────────────────────────────

type stubReferenceRepo struct {
	mu         sync.Mutex
	brands     map[uuid.UUID]*model.Brand
	vendors    map[uuid.UUID]*model.Vendor
	warranties map[uuid.UUID]*model.Warranty
	dimensions map[uuid.UUID]*model.Dimensions
}

func newStubReferenceRepo() *stubReferenceRepo {
	return &stubReferenceRepo{
		brands:     make(map[uuid.UUID]*model.Brand),
		vendors:    make(map[uuid.UUID]*model.Vendor),
		warranties: make(map[uuid.UUID]*model.Warranty),
		dimensions: make(map[uuid.UUID]*model.Dimensions),
	}
}

func (r *stubReferenceRepo) CreateBrand(_ context.Context, b *model.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.brands {
		if existing.Name == b.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	b.ID = uuid.New()
	r.brands[b.ID] = b
	return nil
}

func (r *stubReferenceRepo) GetBrand(_ context.Context, id uuid.UUID) (*model.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.brands[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubReferenceRepo) ListBrands(_ context.Context) ([]model.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubReferenceRepo) CreateVendor(_ context.Context, v *model.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = uuid.New()
	r.vendors[v.ID] = v
	return nil
}

func (r *stubReferenceRepo) GetVendor(_ context.Context, id uuid.UUID) (*model.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vendors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubReferenceRepo) CreateWarranty(_ context.Context, w *model.Warranty) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.ID = uuid.New()
	r.warranties[w.ID] = w
	return nil
}

func (r *stubReferenceRepo) GetWarranty(_ context.Context, id uuid.UUID) (*model.Warranty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.warranties[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return w, nil
}

func (r *stubReferenceRepo) CreateDimensions(_ context.Context, d *model.Dimensions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.ID = uuid.New()
	r.dimensions[d.ID] = d
	return nil
}

func (r *stubReferenceRepo) GetDimensions(_ context.Context, id uuid.UUID) (*model.Dimensions, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.dimensions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubReferenceRepo) DB() *gorm.DB { return nil }
