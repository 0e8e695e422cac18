package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PromptField enumerates the historical console-prompt order (spec.md
// §6): rho, h, p, beta, alpha, theta, kappa, mu, gamma, sigma, L, zoom,
// infile, outfile, graphicsfile, viewer, comments.
type PromptField string

const (
	FieldRho          PromptField = "rho"
	FieldH            PromptField = "h"
	FieldP            PromptField = "p"
	FieldBeta         PromptField = "beta"
	FieldAlpha        PromptField = "alpha"
	FieldTheta        PromptField = "theta"
	FieldKappa        PromptField = "kappa"
	FieldMu           PromptField = "mu"
	FieldGamma        PromptField = "gamma"
	FieldSigma        PromptField = "sigma"
	FieldL            PromptField = "L"
	FieldZoom         PromptField = "zoom"
	FieldInfile       PromptField = "infile"
	FieldOutfile      PromptField = "outfile"
	FieldGraphicsfile PromptField = "graphicsfile"
	FieldViewer       PromptField = "viewer"
	FieldComments     PromptField = "comments"
)

// PromptOrder is the fixed field order of the historical prompt stream.
var PromptOrder = []PromptField{
	FieldRho, FieldH, FieldP, FieldBeta, FieldAlpha, FieldTheta,
	FieldKappa, FieldMu, FieldGamma, FieldSigma, FieldL, FieldZoom,
	FieldInfile, FieldOutfile, FieldGraphicsfile, FieldViewer, FieldComments,
}

// HostOptions carries the non-dynamics, host-side fields from the
// prompt stream (file paths, viewer command, free-form comments).
type HostOptions struct {
	Infile       string
	Outfile      string
	Graphicsfile string
	Viewer       string
	Comments     string
}

// ParseKVStream reads "name: value" lines, whitespace-tolerant, skipping
// everything up to and including the first colon on each line. Lines
// that don't mention a recognized field are ignored. Returns the parsed
// Parameters (validated) and HostOptions.
func ParseKVStream(r io.Reader) (Parameters, HostOptions, error) {
	p, err := Default()
	if err != nil {
		return Parameters{}, HostOptions{}, err
	}
	var host HostOptions

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}
		name := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if value == "" {
			continue
		}

		switch PromptField(name) {
		case FieldRho:
			p.Rho, err = strconv.ParseFloat(value, 64)
		case FieldH:
			p.H, err = strconv.Atoi(value)
		case FieldP:
			p.P, err = strconv.ParseFloat(value, 64)
		case FieldBeta:
			p.Beta, err = strconv.ParseFloat(value, 64)
		case FieldAlpha:
			p.Alpha, err = strconv.ParseFloat(value, 64)
		case FieldTheta:
			p.Theta, err = strconv.ParseFloat(value, 64)
		case FieldKappa:
			p.Kappa, err = strconv.ParseFloat(value, 64)
		case FieldMu:
			p.Mu, err = strconv.ParseFloat(value, 64)
		case FieldGamma:
			p.Gamma, err = strconv.ParseFloat(value, 64)
		case FieldSigma:
			p.Sigma, err = strconv.ParseFloat(value, 64)
		case FieldL:
			p.L, err = strconv.Atoi(value)
		case FieldZoom:
			p.Zoom, err = strconv.Atoi(value)
		case FieldInfile:
			host.Infile = value
		case FieldOutfile:
			host.Outfile = value
		case FieldGraphicsfile:
			host.Graphicsfile = value
		case FieldViewer:
			host.Viewer = value
		case FieldComments:
			host.Comments = value
		default:
			continue
		}
		if err != nil {
			return Parameters{}, HostOptions{}, fmt.Errorf("parsing field %q=%q: %w", name, value, err)
		}
	}
	if err := sc.Err(); err != nil {
		return Parameters{}, HostOptions{}, fmt.Errorf("reading prompt stream: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, HostOptions{}, err
	}
	return p, host, nil
}
