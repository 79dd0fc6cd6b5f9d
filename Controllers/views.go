package Controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"HRKeeper/Models"
	"HRKeeper/RecordStore"
)

const layout = "layout"

// page is the binding every view receives.
type page struct {
	View      string
	Title     string
	ListTitle string
	Active    string
	Flash     string
	Error     string
	Errors    map[string]string
	Columns   []string
	Rows      [][]string
	Extra     fiber.Map
}

func (p page) bind() fiber.Map {
	binding := fiber.Map{
		"Title":     p.Title,
		"ListTitle": p.ListTitle,
		"Active":    p.Active,
		"Flash":     p.Flash,
		"Error":     p.Error,
		"Errors":    p.Errors,
		"Columns":   p.Columns,
		"Rows":      p.Rows,
		"Today":     time.Now().Format(Models.DateLayout),
	}
	for k, v := range p.Extra {
		binding[k] = v
	}
	return binding
}

func (p page) withTable(t RecordStore.Table) page {
	p.Columns = t.Columns
	p.Rows = t.Rows
	return p
}

// withError records err on the page and returns the matching status.
func (p page) withError(err error) (page, int) {
	var ve *Models.ValidationError
	if errors.As(err, &ve) {
		p.Error = "Invalid input: " + ve.Error()
		p.Errors = ve.Fields
		return p, fiber.StatusBadRequest
	}

	log.Printf("%s view failed: %v", p.Active, err)
	p.Error = "Something went wrong: " + err.Error()
	return p, fiber.StatusInternalServerError
}

func render(ctx *fiber.Ctx, status int, p page) error {
	return ctx.Status(status).Render(p.View, p.bind(), layout)
}

// statusFor maps store and validation errors onto HTTP status codes.
func statusFor(err error) int {
	var ve *Models.ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func jsonError(ctx *fiber.Ctx, err error) error {
	status := statusFor(err)
	body := fiber.Map{"error": err.Error()}

	var ve *Models.ValidationError
	if errors.As(err, &ve) {
		body["fields"] = ve.Fields
	} else {
		log.Printf("%s %s failed: %v", ctx.Method(), ctx.Path(), err)
	}
	return ctx.Status(status).JSON(body)
}

// tableResponse is the JSON listing shape. Records are the typed entities
// decoded by column name, so columns the entity lacks are only in Columns.
type tableResponse struct {
	Table   string        `json:"table"`
	Columns []string      `json:"columns"`
	Count   int           `json:"count"`
	Records []interface{} `json:"records"`
}

func newTableResponse(name string, t RecordStore.Table, decode rowDecoder) (tableResponse, error) {
	records := make([]interface{}, 0, t.Len())
	for _, row := range t.Rows {
		record, err := decode(t.Columns, row)
		if err != nil {
			return tableResponse{}, err
		}
		records = append(records, record)
	}

	return tableResponse{
		Table:   name,
		Columns: t.Columns,
		Count:   t.Len(),
		Records: records,
	}, nil
}

type rowDecoder func(columns, row []string) (interface{}, error)

// tableController is the list/add plumbing shared by the four record views.
// newRow turns the submitted body into a validated row.
type tableController struct {
	store     RecordStore.Store
	employees RecordStore.Store
	view      page
	success   string
	newRow    func(ctx *fiber.Ctx) ([]string, error)
	decode    rowDecoder
}

func (c *tableController) extra() (fiber.Map, error) {
	extra := fiber.Map{"LeaveTypes": Models.LeaveTypes}
	if c.employees.Path == "" {
		return extra, nil
	}

	employees, err := c.employees.Load()
	if err != nil {
		return nil, err
	}
	extra["EmployeeIDs"] = employees.Values("emp_id")
	return extra, nil
}

// Page renders the form and the full table.
func (c *tableController) Page(ctx *fiber.Ctx) error {
	return c.show(ctx, fiber.StatusOK, c.view)
}

func (c *tableController) show(ctx *fiber.Ctx, status int, p page) error {
	extra, err := c.extra()
	if err != nil {
		p, status = p.withError(err)
		return render(ctx, status, p)
	}
	p.Extra = extra

	table, err := c.store.Load()
	if err != nil {
		p, status = p.withError(err)
		return render(ctx, status, p)
	}
	return render(ctx, status, p.withTable(table))
}

// Submit handles the form post, then shows the page again.
func (c *tableController) Submit(ctx *fiber.Ctx) error {
	row, err := c.newRow(ctx)
	if err != nil {
		p, status := c.view.withError(err)
		return c.show(ctx, status, p)
	}

	if _, err := c.store.Add(row); err != nil {
		p, status := c.view.withError(err)
		return render(ctx, status, p)
	}

	p := c.view
	p.Flash = c.success
	return c.show(ctx, fiber.StatusOK, p)
}

// List returns the table as JSON.
func (c *tableController) List(ctx *fiber.Ctx) error {
	table, err := c.store.Load()
	if err != nil {
		return jsonError(ctx, err)
	}

	response, err := newTableResponse(c.store.Name, table, c.decode)
	if err != nil {
		return jsonError(ctx, err)
	}
	return ctx.JSON(response)
}

// Create appends one row from a JSON or form body.
func (c *tableController) Create(ctx *fiber.Ctx) error {
	row, err := c.newRow(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	table, err := c.store.Add(row)
	if err != nil {
		return jsonError(ctx, err)
	}

	record := table.Records()[table.Len()-1]
	return ctx.Status(fiber.StatusCreated).JSON(record)
}
