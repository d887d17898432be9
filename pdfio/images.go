package pdfio

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// imageContext caches the pdfcpu view of the document. Building it reads
// and optimizes the whole file, so it only happens when a page's images
// are actually requested (i.e. OCR is enabled).
type imageContext struct {
	loaded bool
	ctx    *pdfcpumodel.Context
	err    error
}

// Images returns the raw data of every image embedded on the given
// 1-based page, with stream filters already decoded. Pages without
// images return an empty slice.
func (r *Reader) Images(page int) ([][]byte, error) {
	ctx, err := r.imageCtx.load(r.path)
	if err != nil {
		return nil, err
	}
	if page < 1 || page > ctx.PageCount {
		return nil, fmt.Errorf("page %d out of range (document has %d pages)", page, ctx.PageCount)
	}

	extracted, err := pdfcpu.ExtractPageImages(ctx, page, false)
	if err != nil {
		return nil, fmt.Errorf("failed to extract images from page %d: %w", page, err)
	}

	// Map iteration order is random; keep object-number order so OCR
	// fragments are emitted deterministically.
	objNrs := make([]int, 0, len(extracted))
	for objNr := range extracted {
		objNrs = append(objNrs, objNr)
	}
	sort.Ints(objNrs)

	images := make([][]byte, 0, len(extracted))
	for _, objNr := range objNrs {
		data, err := io.ReadAll(extracted[objNr])
		if err != nil {
			return nil, fmt.Errorf("failed to read image object %d on page %d: %w", objNr, page, err)
		}
		images = append(images, data)
	}

	return images, nil
}

func (c *imageContext) load(path string) (*pdfcpumodel.Context, error) {
	if c.loaded {
		return c.ctx, c.err
	}
	c.loaded = true

	f, err := os.Open(path)
	if err != nil {
		c.err = fmt.Errorf("failed to reopen PDF for image extraction: %w", err)
		return nil, c.err
	}
	defer f.Close()

	conf := pdfcpumodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfcpumodel.ValidationRelaxed

	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		c.err = fmt.Errorf("failed to parse PDF for image extraction: %w", err)
		return nil, c.err
	}

	c.ctx = ctx
	return ctx, nil
}
