// Package entity contains the core business objects of the project.
// The whole application state lives in a single Document that is loaded
// and persisted as one JSON value.
package entity

// Admin holds the single administrator identity. The username is fixed;
// only the password hash is ever rewritten, and only out-of-band.
type Admin struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// Company is the singleton company profile shown on the public site.
type Company struct {
	Name     string `json:"name"`
	LogoPath string `json:"logoPath"`
}

// Category groups products and owns a day-of-month availability calendar.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Product is a catalog item belonging to exactly one category.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CategoryID  string   `json:"categoryId"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Photos      []string `json:"photos"`
}

// Document is the root of the persisted state. Every request operates on
// a fresh snapshot of it and writes the whole thing back on mutation.
type Document struct {
	Admin        Admin                      `json:"admin"`
	Company      Company                    `json:"company"`
	Categories   []Category                 `json:"categories"`
	Products     []Product                  `json:"products"`
	Availability map[string]AvailabilityMap `json:"availability"`
}

// NewDocument returns the initial document used to seed an empty store.
func NewDocument(companyName string) *Document {
	return &Document{
		Admin:        Admin{Username: "admin"},
		Company:      Company{Name: companyName},
		Categories:   []Category{},
		Products:     []Product{},
		Availability: map[string]AvailabilityMap{},
	}
}

// FindCategory returns a pointer into the category slice, or nil.
func (d *Document) FindCategory(id string) *Category {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return &d.Categories[i]
		}
	}

	return nil
}

// FindProduct returns a pointer into the product slice, or nil.
func (d *Document) FindProduct(id string) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}

	return nil
}

// HasCategory reports whether a category with the given id exists.
func (d *Document) HasCategory(id string) bool {
	return d.FindCategory(id) != nil
}

// RemoveCategory deletes the category, its availability entry and every
// product referencing it. It reports whether the category existed.
func (d *Document) RemoveCategory(id string) bool {
	if !d.HasCategory(id) {
		return false
	}

	kept := d.Categories[:0]
	for _, c := range d.Categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	d.Categories = kept

	delete(d.Availability, id)

	keptProducts := d.Products[:0]
	for _, p := range d.Products {
		if p.CategoryID != id {
			keptProducts = append(keptProducts, p)
		}
	}
	d.Products = keptProducts

	return true
}

// RemoveProduct deletes a single product. No cascade is involved.
func (d *Document) RemoveProduct(id string) bool {
	if d.FindProduct(id) == nil {
		return false
	}

	kept := d.Products[:0]
	for _, p := range d.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	d.Products = kept

	return true
}
