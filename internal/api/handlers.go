package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	imagepkg "github.com/youruser/decksheet/internal/image"
	"github.com/youruser/decksheet/internal/session"
	"github.com/youruser/decksheet/internal/sheet"
	"github.com/youruser/decksheet/internal/util"
)

// ExportFilename is the fixed name of the exported sheet.
const ExportFilename = "deck.png"

type Handlers struct {
	session   *session.Session
	outputDir string
}

func NewHandlers(s *session.Session, outputDir string) *Handlers {
	return &Handlers{session: s, outputDir: outputDir}
}

// health
func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// entryView is an Entry as the interface sees it: positions are 1-based on
// the way out and parsed back to 0-based on the way in.
type entryView struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

func viewOf(e session.Entry) entryView {
	return entryView{ID: e.ID, Name: e.Name, Position: e.Position + 1}
}

// uploadImages accepts multipart files under the "images" field. Parts that
// are not an image MIME type, or that fail to decode, are skipped without
// an error; the entry simply never appears.
func (h *Handlers) uploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	added := []entryView{}
	for _, fh := range form.File["images"] {
		if !imagepkg.IsImageContentType(fh.Header.Get("Content-Type")) {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			continue
		}
		img, err := imagepkg.DecodeImage(f)
		f.Close()
		if err != nil {
			continue
		}
		added = append(added, viewOf(h.session.Add(fh.Filename, img)))
	}
	c.JSON(http.StatusOK, gin.H{"added": added, "count": len(added)})
}

// addImagesByURL fetches remote card art (best-effort): failed URLs are
// logged and skipped, the rest are appended in request order.
func (h *Handlers) addImagesByURL(c *gin.Context) {
	var req struct {
		URLs []string `json:"urls"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	added := []entryView{}
	for _, u := range req.URLs {
		img, err := imagepkg.FetchImage(u)
		if err != nil {
			log.Println("image fetch error:", err)
			continue
		}
		added = append(added, viewOf(h.session.Add(u, img)))
	}
	c.JSON(http.StatusOK, gin.H{"added": added, "count": len(added)})
}

// getSession reports the full interface state, including the derived cell
// and canvas geometry for the current configuration.
func (h *Handlers) getSession(c *gin.Context) {
	l := h.session.Layout()
	lw, lh := l.LogicalSize()
	pw, ph := l.PhysicalSize()

	entries := []entryView{}
	for _, e := range h.session.Entries() {
		entries = append(entries, viewOf(e))
	}
	c.JSON(http.StatusOK, gin.H{
		"entries":       entries,
		"grid":          l,
		"cell_height":   l.CellHeight(),
		"logical_size":  gin.H{"width": lw, "height": lh},
		"physical_size": gin.H{"width": pw, "height": ph},
	})
}

// setGrid takes the rows/cols form fields as strings; malformed values fall
// back to 1 rather than failing.
func (h *Handlers) setGrid(c *gin.Context) {
	var req struct {
		Rows string `json:"rows"`
		Cols string `json:"cols"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.session.SetGrid(session.ParseDim(req.Rows), session.ParseDim(req.Cols))
	c.JSON(http.StatusOK, gin.H{"grid": h.session.Layout()})
}

func (h *Handlers) setCellWidth(c *gin.Context) {
	var req struct {
		Width string `json:"width"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.session.SetCellWidth(session.ParseWidth(req.Width))
	l := h.session.Layout()
	c.JSON(http.StatusOK, gin.H{"cell_width": l.CellWidth, "cell_height": l.CellHeight()})
}

// setPosition takes the 1-based position field; empty or non-numeric input
// means cell 1 (the first cell).
func (h *Handlers) setPosition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Position string `json:"position"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.session.SetPosition(id, session.ParsePosition(req.Position)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown image id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handlers) removeImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.session.Remove(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown image id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handlers) arrange(c *gin.Context) {
	h.session.AutoArrange()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handlers) clear(c *gin.Context) {
	h.session.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// sheetPNG composes the current session and hands the PNG back for download.
func (h *Handlers) sheetPNG(c *gin.Context) {
	img := sheet.Compose(h.session.Placed(), h.session.Layout())
	b, err := sheet.EncodePNG(img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	c.Data(http.StatusOK, "image/png", b)
}

// exportSheet composes and writes deck.png under the output directory.
func (h *Handlers) exportSheet(c *gin.Context) {
	img := sheet.Compose(h.session.Placed(), h.session.Layout())
	b, err := sheet.EncodePNG(img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	path, err := util.WriteFileIn(h.outputDir, ExportFilename, b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path})
}

// qrHandler returns a PNG QR code for the "text" query param, for sharing a
// hosted sheet.
func (h *Handlers) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 400
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			size = v
		}
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad image id"})
		return 0, false
	}
	return id, true
}
