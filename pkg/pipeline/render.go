package pipeline

import (
	"fmt"

	"github.com/matzehuels/streemap/pkg/dataset"
	"github.com/matzehuels/streemap/pkg/errors"
	"github.com/matzehuels/streemap/pkg/render/sink"
	"github.com/matzehuels/streemap/pkg/render/styles"
)

// RenderFromLayout generates output artifacts in the requested formats.
func RenderFromLayout(l dataset.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	style, ok := styles.Lookup(opts.Style)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q", opts.Style)
	}

	svgOpts := []sink.SVGOption{
		sink.WithStyle(style),
		sink.WithLabels(!opts.NoLabels),
	}
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithScale(opts.Scale), sink.WithPNGSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONStyle(style.Name()))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
