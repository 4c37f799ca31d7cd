package console

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/form"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/gateway"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/listview"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/models"
)

func (a *App) blogView() *listview.View[models.Blog] {
	return listview.New(listview.Config[models.Blog]{
		Resource:   "blogs",
		ID:         func(b models.Blog) string { return b.ID },
		SearchText: func(b models.Blog) []string { return []string{b.Title, b.Category, b.Author} },
		Tabs: []listview.Tab[models.Blog]{
			{Key: listview.TabAll, Label: "All", Predicate: func(models.Blog) bool { return true }},
		},
		Fetch: a.gw.Blogs,
		Actions: []listview.Action[models.Blog]{
			{
				Key:     "delete",
				Success: "Blog deleted successfully",
				Failure: "Failed to delete blog",
				Confirm: "Are you sure you want to delete this blog?",
				Remove:  true,
				Call:    a.gw.DeleteBlog,
			},
		},
		ConfirmFn: a.confirm,
		Toasts:    a.toasts,
		Log:       a.log,
	})
}

// BlogsScreen drives the blog catalogue: list, create, edit, delete.
func (a *App) BlogsScreen(ctx context.Context) {
	s := &listScreen[models.Blog]{
		app:     a,
		title:   "blogs",
		view:    a.blogView(),
		headers: []string{"ID", "TITLE", "CATEGORY", "AUTHOR", "CREATED"},
		row: func(b models.Blog) []string {
			return []string{b.ID, orNA(b.Title), orNA(b.Category), orNA(b.Author), orNA(b.CreatedAt)}
		},
	}
	s.extra = map[string]func(ctx context.Context, arg string){
		"new":  func(ctx context.Context, arg string) { a.BlogFormScreen(ctx, "") },
		"edit": func(ctx context.Context, arg string) { a.BlogFormScreen(ctx, arg) },
	}
	s.run(ctx, []string{"new", "edit <id>", "delete <id>"})
}

// Cover images are capped at 5 MiB, author portraits at 2 MiB; the two slots
// do not share a ceiling.
const (
	blogImageMaxBytes   = 5 * 1024 * 1024
	authorImageMaxBytes = 2 * 1024 * 1024
)

func blogFormSchema() form.Schema {
	return form.Schema{
		Steps: []form.StepSpec{
			{Name: "content", Required: []string{"title", "category", "description", "author", "authorRole"}},
		},
		Slots: []form.SlotSpec{
			{Name: "image", MaxBytes: blogImageMaxBytes, RequiredOnCreate: true},
			{Name: "authorImage", MaxBytes: authorImageMaxBytes, RequiredOnCreate: true},
		},
	}
}

func decodeBlogDraft(data json.RawMessage) (form.Draft, error) {
	var b models.Blog
	if err := json.Unmarshal(unwrapRecord(data), &b); err != nil {
		return form.Draft{}, err
	}
	return form.Draft{
		Fields: map[string]string{
			"title":       b.Title,
			"category":    b.Category,
			"description": b.Description,
			"author":      b.Author,
			"authorRole":  b.AuthorRole,
		},
		SlotURLs: map[string]string{
			"image":       b.Image,
			"authorImage": b.AuthorImage,
		},
	}, nil
}

// BlogFormScreen opens the blog editor; an empty blogID means "create new".
func (a *App) BlogFormScreen(ctx context.Context, blogID string) {
	f := form.New(form.Config{
		Schema:   blogFormSchema(),
		Uploader: a.uploader,
		Load:     a.gw.BlogByID,
		Decode:   decodeBlogDraft,
		Create: func(ctx context.Context, payload map[string]any) gateway.Result {
			return a.gw.AddBlog(ctx, payload)
		},
		Update: func(ctx context.Context, id string, payload map[string]any) gateway.Result {
			return a.gw.UpdateBlog(ctx, id, payload)
		},
		SuccessCreate: "Blog added successfully!",
		SuccessUpdate: "Blog updated successfully!",
		Failure:       "Failed to save blog. Please try again.",
		Toasts:        a.toasts,
		Log:           a.log,
	})
	if err := f.Init(ctx, blogID); err != nil {
		fmt.Fprintln(a.out, "Could not open blog form:", err)
		return
	}

	s := &formScreen{
		app:    a,
		title:  "blog-form",
		f:      f,
		fields: []string{"title", "category", "description", "author", "authorRole"},
		slots:  []string{"image", "authorImage"},
	}
	s.run(ctx)
}
