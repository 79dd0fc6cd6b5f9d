package Controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"HRKeeper/Export"
	"HRKeeper/Models"
	"HRKeeper/RecordStore"
)

// ExportController serves table downloads
type ExportController struct {
	Stores Models.Stores
}

func NewExportController(stores Models.Stores) *ExportController {
	return &ExportController{Stores: stores}
}

// Download sends /export/:table/:format, where table may be "all" for xlsx.
func (c *ExportController) Download(ctx *fiber.Ctx) error {
	name := ctx.Params("table")
	format := ctx.Params("format")

	var stores []RecordStore.Store
	if name == "all" {
		stores = c.Stores.All()
	} else if store, ok := c.Stores.ByName(name); ok {
		stores = []RecordStore.Store{store}
	} else {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown table " + name})
	}

	switch format {
	case "xlsx":
		return c.sendWorkbook(ctx, name, stores)
	case "csv":
		if len(stores) != 1 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "CSV export needs a single table"})
		}
		return c.sendCSV(ctx, stores[0])
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported format " + format})
	}
}

func (c *ExportController) sendWorkbook(ctx *fiber.Ctx, name string, stores []RecordStore.Store) error {
	sheets := make([]Export.Sheet, 0, len(stores))
	for _, store := range stores {
		table, err := store.Load()
		if err != nil {
			return jsonError(ctx, err)
		}
		sheets = append(sheets, Export.Sheet{Name: store.Name, Table: table})
	}

	buf, err := Export.Workbook(sheets...)
	if err != nil {
		return jsonError(ctx, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	ctx.Attachment(fmt.Sprintf("%s_export_%s.xlsx", name, timestamp))
	ctx.Set(fiber.HeaderContentType, Export.ContentType)
	return ctx.Send(buf.Bytes())
}

func (c *ExportController) sendCSV(ctx *fiber.Ctx, store RecordStore.Store) error {
	table, err := store.Load()
	if err != nil {
		return jsonError(ctx, err)
	}

	var buf bytes.Buffer
	if err := RecordStore.Encode(&buf, table); err != nil {
		return jsonError(ctx, err)
	}

	ctx.Attachment(store.Name + ".csv")
	ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return ctx.Send(buf.Bytes())
}
