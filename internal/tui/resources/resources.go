// ABOUTME: Resource catalog binding API types to the generic list and form screens
// ABOUTME: One Spec per admin section: columns, fields, and backend operations

package resources

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/mylikerahul/acasa-adminctl/internal/formctl"
	"github.com/mylikerahul/acasa-adminctl/internal/listctl"
)

// Row is one table row, independent of the underlying API type
type Row struct {
	ID    string
	Cells map[string]string
}

// Column describes one table column
type Column struct {
	ID    string
	Title string
	Width int
}

// FieldKind controls how a form value is sent to the backend
type FieldKind int

const (
	KindText FieldKind = iota
	KindNumber
)

// Field describes one create/edit form input
type Field struct {
	Name     string
	Title    string
	Section  string
	Kind     FieldKind
	Required bool
}

// Spec wires one admin section: how to list it, delete from it, and
// which form it edits with. SetStatus and DeleteMany are nil when the
// backend has no such endpoint.
type Spec struct {
	Name           string // plural route segment, e.g. "agents"
	Title          string
	Columns        []Column
	DefaultVisible []string
	Statuses       []string
	Fields         []Field

	Fetch      listctl.Fetcher[Row]
	DeleteOne  listctl.Deleter
	DeleteMany listctl.BulkDeleter
	SetStatus  func(ctx context.Context, id, status string) error
	Save       func(ctx context.Context, id string, fields map[string]string) error
}

// ColumnIDs returns every column id in display order
func (s *Spec) ColumnIDs() []string {
	out := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		out[i] = col.ID
	}
	return out
}

// Sections groups the spec's fields into form sections, preserving the
// order sections first appear in
func (s *Spec) Sections() []formctl.Section {
	var out []formctl.Section
	index := map[string]int{}
	for _, f := range s.Fields {
		i, ok := index[f.Section]
		if !ok {
			i = len(out)
			index[f.Section] = i
			out = append(out, formctl.Section{Name: f.Section})
		}
		out[i].Fields = append(out[i].Fields, f.Name)
	}
	return out
}

// RequiredFields returns the names of the required form fields
func (s *Spec) RequiredFields() []string {
	var out []string
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

// rows adapts a typed list call into a Row fetcher
func rows[T any](
	list func(context.Context, client.ListQuery) (*client.Page[T], error),
	toRow func(*T) Row,
) listctl.Fetcher[Row] {
	return func(ctx context.Context, q client.ListQuery) (*client.Page[Row], error) {
		page, err := list(ctx, q)
		if err != nil {
			return nil, err
		}
		out := &client.Page[Row]{
			Items:      make([]Row, 0, len(page.Items)),
			Total:      page.Total,
			Page:       page.Page,
			TotalPages: page.TotalPages,
		}
		for i := range page.Items {
			out.Items = append(out.Items, toRow(&page.Items[i]))
		}
		return out, nil
	}
}

// save builds the create/update closure for a resource. Form values are
// strings; number fields are converted so the backend sees real numbers.
func save(c *client.Client, resource string, fields []Field) func(context.Context, string, map[string]string) error {
	kinds := make(map[string]FieldKind, len(fields))
	for _, f := range fields {
		kinds[f.Name] = f.Kind
	}

	return func(ctx context.Context, id string, values map[string]string) error {
		path, err := client.ResourcePath(resource)
		if err != nil {
			return err
		}

		payload := make(map[string]any, len(values))
		for name, value := range values {
			if kinds[name] == KindNumber {
				n, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return fmt.Errorf("%s must be a number", name)
				}
				payload[name] = n
				continue
			}
			payload[name] = value
		}

		if id == "" {
			_, err = c.Do(ctx, http.MethodPost, path, payload)
		} else {
			_, err = c.Do(ctx, http.MethodPut, path+"/"+id, payload)
		}
		return err
	}
}

// Catalog returns every admin section backed by the given client
func Catalog(c *client.Client) []Spec {
	agentFields := []Field{
		{Name: "name", Title: "Name", Section: "Profile", Required: true},
		{Name: "email", Title: "Email", Section: "Profile", Required: true},
		{Name: "phone", Title: "Phone", Section: "Profile"},
		{Name: "city", Title: "City", Section: "Details", Required: true},
		{Name: "agency", Title: "Agency", Section: "Details"},
		{Name: "experience", Title: "Experience (years)", Section: "Details", Kind: KindNumber},
	}
	propertyFields := []Field{
		{Name: "title", Title: "Title", Section: "Listing", Required: true},
		{Name: "type", Title: "Type", Section: "Listing", Required: true},
		{Name: "purpose", Title: "Purpose", Section: "Listing"},
		{Name: "price", Title: "Price", Section: "Pricing", Kind: KindNumber, Required: true},
		{Name: "areaSqft", Title: "Area (sqft)", Section: "Pricing", Kind: KindNumber},
		{Name: "city", Title: "City", Section: "Location", Required: true},
		{Name: "address", Title: "Address", Section: "Location"},
	}
	developerFields := []Field{
		{Name: "name", Title: "Name", Section: "Profile", Required: true},
		{Name: "email", Title: "Email", Section: "Profile"},
		{Name: "phone", Title: "Phone", Section: "Profile"},
		{Name: "city", Title: "City", Section: "Profile"},
	}
	dealFields := []Field{
		{Name: "title", Title: "Title", Section: "Deal", Required: true},
		{Name: "clientName", Title: "Client name", Section: "Client", Required: true},
		{Name: "clientEmail", Title: "Client email", Section: "Client"},
		{Name: "amount", Title: "Amount", Section: "Deal", Kind: KindNumber},
		{Name: "stage", Title: "Stage", Section: "Deal"},
	}
	blogFields := []Field{
		{Name: "title", Title: "Title", Section: "Article", Required: true},
		{Name: "author", Title: "Author", Section: "Article"},
		{Name: "category", Title: "Category", Section: "Article"},
		{Name: "content", Title: "Content", Section: "Body", Required: true},
	}

	return []Spec{
		{
			Name:  "agents",
			Title: "Agents",
			Columns: []Column{
				{ID: "name", Title: "Name", Width: 20},
				{ID: "email", Title: "Email", Width: 26},
				{ID: "phone", Title: "Phone", Width: 14},
				{ID: "city", Title: "City", Width: 12},
				{ID: "status", Title: "Status", Width: 10},
			},
			DefaultVisible: []string{"name", "email", "city", "status"},
			Statuses:       []string{"active", "inactive"},
			Fields:         agentFields,
			Fetch: rows(c.ListAgents, func(a *client.Agent) Row {
				return Row{ID: a.ID, Cells: map[string]string{
					"name": a.Name, "email": a.Email, "phone": a.Phone,
					"city": a.City, "status": a.Status,
				}}
			}),
			DeleteOne:  c.DeleteAgent,
			DeleteMany: c.BulkDeleteAgents,
			SetStatus:  c.SetAgentStatus,
			Save:       save(c, "agents", agentFields),
		},
		{
			Name:  "properties",
			Title: "Properties",
			Columns: []Column{
				{ID: "title", Title: "Title", Width: 28},
				{ID: "type", Title: "Type", Width: 12},
				{ID: "city", Title: "City", Width: 12},
				{ID: "price", Title: "Price", Width: 12},
				{ID: "status", Title: "Status", Width: 10},
			},
			DefaultVisible: []string{"title", "type", "city", "price", "status"},
			Statuses:       []string{"active", "inactive"},
			Fields:         propertyFields,
			Fetch: rows(c.ListProperties, func(p *client.Property) Row {
				return Row{ID: p.ID, Cells: map[string]string{
					"title": p.Title, "type": p.Type, "city": p.City,
					"price": fmt.Sprintf("%.0f", p.Price), "status": p.Status,
				}}
			}),
			DeleteOne:  c.DeleteProperty,
			DeleteMany: c.BulkDeleteProperties,
			SetStatus:  c.SetPropertyStatus,
			Save:       save(c, "properties", propertyFields),
		},
		{
			Name:  "developers",
			Title: "Developers",
			Columns: []Column{
				{ID: "name", Title: "Name", Width: 22},
				{ID: "email", Title: "Email", Width: 26},
				{ID: "city", Title: "City", Width: 12},
				{ID: "projects", Title: "Projects", Width: 10},
				{ID: "status", Title: "Status", Width: 10},
			},
			DefaultVisible: []string{"name", "email", "city", "status"},
			Statuses:       []string{"active", "inactive"},
			Fields:         developerFields,
			Fetch: rows(c.ListDevelopers, func(d *client.Developer) Row {
				return Row{ID: d.ID, Cells: map[string]string{
					"name": d.Name, "email": d.Email, "city": d.City,
					"projects": strconv.Itoa(d.ProjectCount), "status": d.Status,
				}}
			}),
			DeleteOne:  c.DeleteDeveloper,
			DeleteMany: c.BulkDeleteDevelopers,
			SetStatus:  c.SetDeveloperStatus,
			Save:       save(c, "developers", developerFields),
		},
		{
			Name:  "deals",
			Title: "Deals",
			Columns: []Column{
				{ID: "title", Title: "Title", Width: 24},
				{ID: "client", Title: "Client", Width: 18},
				{ID: "amount", Title: "Amount", Width: 12},
				{ID: "stage", Title: "Stage", Width: 12},
			},
			DefaultVisible: []string{"title", "client", "amount", "stage"},
			Fields:         dealFields,
			Fetch: rows(c.ListDeals, func(d *client.Deal) Row {
				return Row{ID: d.ID, Cells: map[string]string{
					"title": d.Title, "client": d.ClientName,
					"amount": fmt.Sprintf("%.0f", d.Amount), "stage": d.Stage,
				}}
			}),
			DeleteOne:  c.DeleteDeal,
			DeleteMany: c.BulkDeleteDeals,
			Save:       save(c, "deals", dealFields),
		},
		{
			Name:  "contacts",
			Title: "Enquiries",
			Columns: []Column{
				{ID: "name", Title: "Name", Width: 18},
				{ID: "email", Title: "Email", Width: 26},
				{ID: "subject", Title: "Subject", Width: 28},
				{ID: "status", Title: "Status", Width: 10},
			},
			DefaultVisible: []string{"name", "email", "subject", "status"},
			Statuses:       []string{"new", "replied", "closed"},
			Fetch: rows(c.ListContacts, func(ct *client.Contact) Row {
				return Row{ID: ct.ID, Cells: map[string]string{
					"name": ct.Name, "email": ct.Email,
					"subject": ct.Subject, "status": ct.Status,
				}}
			}),
			DeleteOne:  c.DeleteContact,
			DeleteMany: c.BulkDeleteContacts,
			SetStatus:  c.SetContactStatus,
		},
		{
			Name:  "blogs",
			Title: "Blog",
			Columns: []Column{
				{ID: "title", Title: "Title", Width: 30},
				{ID: "author", Title: "Author", Width: 16},
				{ID: "category", Title: "Category", Width: 14},
				{ID: "status", Title: "Status", Width: 10},
			},
			DefaultVisible: []string{"title", "author", "status"},
			Statuses:       []string{"draft", "published"},
			Fields:         blogFields,
			Fetch: rows(c.ListBlogs, func(b *client.Blog) Row {
				return Row{ID: b.ID, Cells: map[string]string{
					"title": b.Title, "author": b.Author,
					"category": b.Category, "status": b.Status,
				}}
			}),
			DeleteOne: c.DeleteBlog,
			SetStatus: c.SetBlogStatus,
			Save:      save(c, "blogs", blogFields),
		},
		{
			Name:  "subscribers",
			Title: "Subscribers",
			Columns: []Column{
				{ID: "email", Title: "Email", Width: 30},
				{ID: "source", Title: "Source", Width: 14},
				{ID: "status", Title: "Status", Width: 10},
			},
			DefaultVisible: []string{"email", "source", "status"},
			Fetch: rows(c.ListSubscribers, func(s *client.Subscriber) Row {
				return Row{ID: s.ID, Cells: map[string]string{
					"email": s.Email, "source": s.Source, "status": s.Status,
				}}
			}),
			DeleteOne:  c.DeleteSubscriber,
			DeleteMany: c.BulkDeleteSubscribers,
		},
	}
}
