// ABOUTME: Typed endpoint methods for every admin-managed resource
// ABOUTME: Thin wrappers over Do plus shared generic CRUD helpers

package client

import (
	"context"
	"fmt"
	"net/http"
)

// Endpoint paths are per-resource configuration, not derived from the
// resource name: the backend is not uniform about its bases (the agent
// stats endpoint predates the v1 prefix).
const (
	agentsPath      = "/api/v1/agents"
	agentStatsPath  = "/api/agents/admin/stats"
	propertiesPath  = "/api/v1/properties"
	developersPath  = "/api/v1/developers"
	dealsPath       = "/api/v1/deals"
	contactsPath    = "/api/v1/contacts"
	blogsPath       = "/api/v1/blogs"
	subscribersPath = "/api/v1/subscribers"
	settingsPath    = "/api/v1/settings"
)

// --- generic CRUD helpers ---

func listResource[T any](ctx context.Context, c *Client, path, key string, q ListQuery) (*Page[T], error) {
	raw, err := c.Do(ctx, http.MethodGet, path+"?"+q.Values().Encode(), nil)
	if err != nil {
		return nil, err
	}
	return DecodePage[T](raw, key)
}

func getResource[T any](ctx context.Context, c *Client, path, key, id string) (*T, error) {
	raw, err := c.Do(ctx, http.MethodGet, path+"/"+id, nil)
	if err != nil {
		return nil, err
	}
	return DecodeItem[T](raw, key)
}

func createResource[T any](ctx context.Context, c *Client, path, key string, item *T) (*T, error) {
	raw, err := c.Do(ctx, http.MethodPost, path, item)
	if err != nil {
		return nil, err
	}
	return DecodeItem[T](raw, key)
}

func updateResource[T any](ctx context.Context, c *Client, path, key, id string, item *T) (*T, error) {
	raw, err := c.Do(ctx, http.MethodPut, path+"/"+id, item)
	if err != nil {
		return nil, err
	}
	return DecodeItem[T](raw, key)
}

func deleteResource(ctx context.Context, c *Client, path, id string) error {
	_, err := c.Do(ctx, http.MethodDelete, path+"/"+id, nil)
	return err
}

func patchStatus(ctx context.Context, c *Client, path, id, status string) error {
	body := map[string]string{"status": status}
	_, err := c.Do(ctx, http.MethodPatch, path+"/"+id+"/status", body)
	return err
}

func bulkDelete(ctx context.Context, c *Client, path string, ids []string) error {
	body := map[string][]string{"ids": ids}
	_, err := c.Do(ctx, http.MethodPost, path+"/bulk-delete", body)
	return err
}

// --- agents ---

func (c *Client) ListAgents(ctx context.Context, q ListQuery) (*Page[Agent], error) {
	return listResource[Agent](ctx, c, agentsPath, "agents", q)
}

func (c *Client) GetAgent(ctx context.Context, id string) (*Agent, error) {
	return getResource[Agent](ctx, c, agentsPath, "agent", id)
}

func (c *Client) CreateAgent(ctx context.Context, a *Agent) (*Agent, error) {
	return createResource(ctx, c, agentsPath, "agent", a)
}

func (c *Client) UpdateAgent(ctx context.Context, id string, a *Agent) (*Agent, error) {
	return updateResource(ctx, c, agentsPath, "agent", id, a)
}

func (c *Client) SetAgentStatus(ctx context.Context, id, status string) error {
	return patchStatus(ctx, c, agentsPath, id, status)
}

func (c *Client) DeleteAgent(ctx context.Context, id string) error {
	return deleteResource(ctx, c, agentsPath, id)
}

func (c *Client) BulkDeleteAgents(ctx context.Context, ids []string) error {
	return bulkDelete(ctx, c, agentsPath, ids)
}

// AgentStats calls the admin stats endpoint on its legacy base path
func (c *Client) AgentStats(ctx context.Context) (*AgentStats, error) {
	raw, err := c.Do(ctx, http.MethodGet, agentStatsPath, nil)
	if err != nil {
		return nil, err
	}
	return DecodeItem[AgentStats](raw, "stats")
}

// --- properties ---

func (c *Client) ListProperties(ctx context.Context, q ListQuery) (*Page[Property], error) {
	return listResource[Property](ctx, c, propertiesPath, "properties", q)
}

func (c *Client) GetProperty(ctx context.Context, id string) (*Property, error) {
	return getResource[Property](ctx, c, propertiesPath, "property", id)
}

func (c *Client) CreateProperty(ctx context.Context, p *Property) (*Property, error) {
	return createResource(ctx, c, propertiesPath, "property", p)
}

func (c *Client) UpdateProperty(ctx context.Context, id string, p *Property) (*Property, error) {
	return updateResource(ctx, c, propertiesPath, "property", id, p)
}

func (c *Client) SetPropertyStatus(ctx context.Context, id, status string) error {
	return patchStatus(ctx, c, propertiesPath, id, status)
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return deleteResource(ctx, c, propertiesPath, id)
}

func (c *Client) BulkDeleteProperties(ctx context.Context, ids []string) error {
	return bulkDelete(ctx, c, propertiesPath, ids)
}

// --- developers ---

func (c *Client) ListDevelopers(ctx context.Context, q ListQuery) (*Page[Developer], error) {
	return listResource[Developer](ctx, c, developersPath, "developers", q)
}

func (c *Client) GetDeveloper(ctx context.Context, id string) (*Developer, error) {
	return getResource[Developer](ctx, c, developersPath, "developer", id)
}

func (c *Client) CreateDeveloper(ctx context.Context, d *Developer) (*Developer, error) {
	return createResource(ctx, c, developersPath, "developer", d)
}

func (c *Client) UpdateDeveloper(ctx context.Context, id string, d *Developer) (*Developer, error) {
	return updateResource(ctx, c, developersPath, "developer", id, d)
}

func (c *Client) SetDeveloperStatus(ctx context.Context, id, status string) error {
	return patchStatus(ctx, c, developersPath, id, status)
}

func (c *Client) DeleteDeveloper(ctx context.Context, id string) error {
	return deleteResource(ctx, c, developersPath, id)
}

func (c *Client) BulkDeleteDevelopers(ctx context.Context, ids []string) error {
	return bulkDelete(ctx, c, developersPath, ids)
}

// --- deals ---

func (c *Client) ListDeals(ctx context.Context, q ListQuery) (*Page[Deal], error) {
	return listResource[Deal](ctx, c, dealsPath, "deals", q)
}

func (c *Client) GetDeal(ctx context.Context, id string) (*Deal, error) {
	return getResource[Deal](ctx, c, dealsPath, "deal", id)
}

func (c *Client) CreateDeal(ctx context.Context, d *Deal) (*Deal, error) {
	return createResource(ctx, c, dealsPath, "deal", d)
}

func (c *Client) UpdateDeal(ctx context.Context, id string, d *Deal) (*Deal, error) {
	return updateResource(ctx, c, dealsPath, "deal", id, d)
}

func (c *Client) DeleteDeal(ctx context.Context, id string) error {
	return deleteResource(ctx, c, dealsPath, id)
}

func (c *Client) BulkDeleteDeals(ctx context.Context, ids []string) error {
	return bulkDelete(ctx, c, dealsPath, ids)
}

// --- contacts ---

func (c *Client) ListContacts(ctx context.Context, q ListQuery) (*Page[Contact], error) {
	return listResource[Contact](ctx, c, contactsPath, "contacts", q)
}

func (c *Client) GetContact(ctx context.Context, id string) (*Contact, error) {
	return getResource[Contact](ctx, c, contactsPath, "contact", id)
}

func (c *Client) SetContactStatus(ctx context.Context, id, status string) error {
	return patchStatus(ctx, c, contactsPath, id, status)
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return deleteResource(ctx, c, contactsPath, id)
}

func (c *Client) BulkDeleteContacts(ctx context.Context, ids []string) error {
	return bulkDelete(ctx, c, contactsPath, ids)
}

// --- blogs ---

func (c *Client) ListBlogs(ctx context.Context, q ListQuery) (*Page[Blog], error) {
	return listResource[Blog](ctx, c, blogsPath, "blogs", q)
}

func (c *Client) GetBlog(ctx context.Context, id string) (*Blog, error) {
	return getResource[Blog](ctx, c, blogsPath, "blog", id)
}

func (c *Client) CreateBlog(ctx context.Context, b *Blog) (*Blog, error) {
	return createResource(ctx, c, blogsPath, "blog", b)
}

func (c *Client) UpdateBlog(ctx context.Context, id string, b *Blog) (*Blog, error) {
	return updateResource(ctx, c, blogsPath, "blog", id, b)
}

func (c *Client) SetBlogStatus(ctx context.Context, id, status string) error {
	return patchStatus(ctx, c, blogsPath, id, status)
}

func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return deleteResource(ctx, c, blogsPath, id)
}

// --- subscribers ---

func (c *Client) ListSubscribers(ctx context.Context, q ListQuery) (*Page[Subscriber], error) {
	return listResource[Subscriber](ctx, c, subscribersPath, "subscribers", q)
}

func (c *Client) DeleteSubscriber(ctx context.Context, id string) error {
	return deleteResource(ctx, c, subscribersPath, id)
}

func (c *Client) BulkDeleteSubscribers(ctx context.Context, ids []string) error {
	return bulkDelete(ctx, c, subscribersPath, ids)
}

// --- settings ---

func (c *Client) GetSettings(ctx context.Context) (*SiteSettings, error) {
	raw, err := c.Do(ctx, http.MethodGet, settingsPath, nil)
	if err != nil {
		return nil, err
	}
	return DecodeItem[SiteSettings](raw, "settings")
}

func (c *Client) UpdateSettings(ctx context.Context, s *SiteSettings) (*SiteSettings, error) {
	raw, err := c.Do(ctx, http.MethodPut, settingsPath, s)
	if err != nil {
		return nil, err
	}
	return DecodeItem[SiteSettings](raw, "settings")
}

// ResourcePath returns the list path for a named resource. Commands use
// this for multipart creates where the payload is built by the form
// controller rather than a typed struct.
func ResourcePath(resource string) (string, error) {
	switch resource {
	case "agents":
		return agentsPath, nil
	case "properties":
		return propertiesPath, nil
	case "developers":
		return developersPath, nil
	case "deals":
		return dealsPath, nil
	case "contacts":
		return contactsPath, nil
	case "blogs":
		return blogsPath, nil
	case "subscribers":
		return subscribersPath, nil
	default:
		return "", fmt.Errorf("unknown resource %q", resource)
	}
}
