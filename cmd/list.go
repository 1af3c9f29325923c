// ABOUTME: Shared helpers for the per-resource CRUD commands
// ABOUTME: List flag plumbing, table rendering, and delete fan-out

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/mylikerahul/acasa-adminctl/internal/formctl"
	"github.com/spf13/cobra"
)

// commandArgs holds the positional args of the currently running command
var commandArgs []string

func argAt(i int) string {
	if i < len(commandArgs) {
		return commandArgs[i]
	}
	return ""
}

// withClient wraps a command body with signal handling and client wiring
func withClient(run func(ctx context.Context, c *client.Client) int) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		commandArgs = args
		c, _, err := newAPIClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		if exitCode := run(ctx, c); exitCode != 0 {
			os.Exit(exitCode)
		}
	}
}

// listFlags carries the pagination and search flags shared by every
// resource list command
type listFlags struct {
	page    int
	limit   int
	search  string
	orderBy string
	order   string
}

func addListFlags(cmd *cobra.Command, f *listFlags) {
	cmd.Flags().IntVar(&f.page, "page", 1, "Page number")
	cmd.Flags().IntVar(&f.limit, "limit", 10, "Rows per page (10, 25, 50 or 100)")
	cmd.Flags().StringVar(&f.search, "search", "", "Search term")
	cmd.Flags().StringVar(&f.orderBy, "sort", "", "Sort field")
	cmd.Flags().StringVar(&f.order, "order", "", "Sort direction (asc or desc)")
}

func (f *listFlags) query() client.ListQuery {
	return client.ListQuery{
		Page:    f.page,
		Limit:   f.limit,
		Search:  f.search,
		OrderBy: f.orderBy,
		Order:   f.order,
	}.Normalized()
}

// runList fetches one page and prints it as a table or JSON
func runList[T any](
	ctx context.Context,
	w io.Writer,
	f *listFlags,
	fetch func(context.Context, client.ListQuery) (*client.Page[T], error),
	headers []string,
	toRow func(*T) []string,
) int {
	page, err := fetch(ctx, f.query())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(page, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	rows := make([][]string, 0, len(page.Items))
	for i := range page.Items {
		rows = append(rows, toRow(&page.Items[i]))
	}
	printTable(w, headers, rows)
	fmt.Fprintf(w, "\nPage %d of %d (%d total)\n", page.Page, page.TotalPages, page.Total)
	return 0
}

// runGet fetches a single record and prints it as indented JSON. A
// non-nil resolve runs first, typically to turn stored image filenames
// into fetchable URLs.
func runGet[T any](ctx context.Context, w io.Writer, id string,
	fetch func(context.Context, string) (*T, error),
	resolve func(*T)) int {
	item, err := fetch(ctx, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if resolve != nil {
		resolve(item)
	}
	data, _ := json.MarshalIndent(item, "", "  ")
	fmt.Fprintln(w, string(data))
	return 0
}

// runCreate decodes a JSON payload from file (or stdin when path is "-")
// and sends it to the backend
func runCreate[T any](ctx context.Context, w io.Writer, path string,
	create func(context.Context, *T) (*T, error)) int {
	item, code := decodePayload[T](path)
	if code != 0 {
		return code
	}
	created, err := create(ctx, item)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	data, _ := json.MarshalIndent(created, "", "  ")
	fmt.Fprintln(w, string(data))
	return 0
}

// runUpdate is runCreate with an id
func runUpdate[T any](ctx context.Context, w io.Writer, id, path string,
	update func(context.Context, string, *T) (*T, error)) int {
	item, code := decodePayload[T](path)
	if code != 0 {
		return code
	}
	updated, err := update(ctx, id, item)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	data, _ := json.MarshalIndent(updated, "", "  ")
	fmt.Fprintln(w, string(data))
	return 0
}

// runCreateMultipart sends a create as multipart/form-data: the JSON
// payload's fields plus the image file under fileField. The image is
// type- and size-checked locally, so a bad file never reaches the
// network.
func runCreateMultipart(ctx context.Context, w io.Writer, c *client.Client,
	resource, fileField, payloadPath, imagePath string) int {
	fields, code := decodeFields(payloadPath)
	if code != 0 {
		return code
	}

	form := formctl.New(nil, nil)
	for name, value := range fields {
		form.SetField(name, value)
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	mimeType := mime.TypeByExtension(filepath.Ext(imagePath))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	if err := form.AttachImage(filepath.Base(imagePath), mimeType, data); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", imagePath, err)
		return 2
	}

	body, contentType, err := form.MultipartPayload(fileField)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	path, err := client.ResourcePath(resource)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	raw, err := c.DoMultipart(ctx, http.MethodPost, path, body, contentType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		fmt.Fprintln(w, string(raw))
		return 0
	}
	fmt.Fprintln(w, out.String())
	return 0
}

// decodeFields flattens a JSON object into the string values a
// multipart body carries. Numbers keep their exact text form.
func decodeFields(path string) (map[string]string, int) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil, 2
		}
		defer file.Close()
		r = file
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid JSON payload: %v\n", err)
		return nil, 2
	}

	fields := make(map[string]string, len(obj))
	for name, value := range obj {
		switch v := value.(type) {
		case string:
			fields[name] = v
		case json.Number:
			fields[name] = v.String()
		case bool:
			fields[name] = strconv.FormatBool(v)
		case nil:
		default:
			fmt.Fprintf(os.Stderr, "Error: field %q must be a scalar in a multipart create\n", name)
			return nil, 2
		}
	}
	return fields, 0
}

func decodePayload[T any](path string) (*T, int) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil, 2
		}
		defer file.Close()
		r = file
	}

	var item T
	if err := json.NewDecoder(r).Decode(&item); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid JSON payload: %v\n", err)
		return nil, 2
	}
	return &item, 0
}

// runDelete removes one or more records. Multiple ids go through the
// bulk endpoint first; backends without one answer 404 and each id is
// deleted individually instead.
func runDelete(ctx context.Context, w io.Writer, ids []string,
	deleteOne func(context.Context, string) error,
	deleteMany func(context.Context, []string) error) int {
	if len(ids) == 1 {
		if err := deleteOne(ctx, ids[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		fmt.Fprintf(w, "Deleted %s\n", ids[0])
		return 0
	}

	err := deleteMany(ctx, ids)
	if client.IsNotFound(err) {
		failed := 0
		for _, id := range ids {
			if err := deleteOne(ctx, id); err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to delete %s: %v\n", id, err)
				failed++
			}
		}
		if failed > 0 {
			return 2
		}
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Deleted %d records\n", len(ids))
	return 0
}

// runStatus flips a record's active status
func runStatus(ctx context.Context, w io.Writer, id, status string,
	set func(context.Context, string, string) error) int {
	if status != "active" && status != "inactive" {
		fmt.Fprintln(os.Stderr, "Error: status must be active or inactive")
		return 2
	}
	if err := set(ctx, id, status); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintf(w, "Set %s to %s\n", id, status)
	return 0
}

// printTable renders rows with aligned columns
func printTable(w io.Writer, headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
