// ABOUTME: Resource types for the Acasa real-estate API
// ABOUTME: JSON shapes for agents, properties, developers, deals, contacts, blogs, subscribers

package client

// Agent is a listing agent profile
type Agent struct {
	ID         string  `json:"_id,omitempty"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone,omitempty"`
	City       string  `json:"city,omitempty"`
	Agency     string  `json:"agency,omitempty"`
	Experience int     `json:"experience,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	Photo      string  `json:"photo,omitempty"`
	Status     string  `json:"status,omitempty"`
	CreatedAt  string  `json:"createdAt,omitempty"`
}

// AgentStats is the admin dashboard summary for agents
type AgentStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// Property is a real-estate listing
type Property struct {
	ID          string   `json:"_id,omitempty"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug,omitempty"`
	Type        string   `json:"type,omitempty"` // apartment, villa, plot, commercial
	Purpose     string   `json:"purpose,omitempty"`
	Price       float64  `json:"price,omitempty"`
	City        string   `json:"city,omitempty"`
	Address     string   `json:"address,omitempty"`
	Bedrooms    int      `json:"bedrooms,omitempty"`
	Bathrooms   int      `json:"bathrooms,omitempty"`
	AreaSqft    float64  `json:"areaSqft,omitempty"`
	AgentID     string   `json:"agentId,omitempty"`
	DeveloperID string   `json:"developerId,omitempty"`
	Images      []string `json:"images,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
	Status      string   `json:"status,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

// Developer is a property developer profile
type Developer struct {
	ID           string `json:"_id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	City         string `json:"city,omitempty"`
	Logo         string `json:"logo,omitempty"`
	ProjectCount int    `json:"projectCount,omitempty"`
	Status       string `json:"status,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// Deal tracks a property transaction through its pipeline
type Deal struct {
	ID          string  `json:"_id,omitempty"`
	Title       string  `json:"title"`
	PropertyID  string  `json:"propertyId,omitempty"`
	AgentID     string  `json:"agentId,omitempty"`
	ClientName  string  `json:"clientName,omitempty"`
	ClientEmail string  `json:"clientEmail,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	Stage       string  `json:"stage,omitempty"` // lead, negotiation, closed, lost
	Status      string  `json:"status,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

// Contact is an inbound enquiry from the marketing site
type Contact struct {
	ID        string `json:"_id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message,omitempty"`
	Status    string `json:"status,omitempty"` // new, replied, closed
	CreatedAt string `json:"createdAt,omitempty"`
}

// Blog is a marketing-site article
type Blog struct {
	ID         string   `json:"_id,omitempty"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug,omitempty"`
	Author     string   `json:"author,omitempty"`
	Category   string   `json:"category,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage string   `json:"coverImage,omitempty"`
	Content    string   `json:"content,omitempty"`
	Status     string   `json:"status,omitempty"` // draft, published
	CreatedAt  string   `json:"createdAt,omitempty"`
}

// Subscriber is a newsletter signup
type Subscriber struct {
	ID        string `json:"_id,omitempty"`
	Email     string `json:"email"`
	Source    string `json:"source,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// SiteSettings is the singleton site configuration record
type SiteSettings struct {
	SiteName        string `json:"siteName,omitempty"`
	ContactEmail    string `json:"contactEmail,omitempty"`
	ContactPhone    string `json:"contactPhone,omitempty"`
	Address         string `json:"address,omitempty"`
	FacebookURL     string `json:"facebookUrl,omitempty"`
	InstagramURL    string `json:"instagramUrl,omitempty"`
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
}
