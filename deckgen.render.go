package deckgen

import (
	"bytes"
	"context"

	"go.uber.org/zap"

	"github.com/siliconcp/go-deckgen/internal"
)

// keptSlide pairs a surviving slide's package reference with its
// source metadata.
type keptSlide struct {
	ref  internal.SlideRef
	info SlideInfo
}

// renderRun is the mutable state of one render. Each run opens its own
// working copy of the template package, so concurrent runs over the
// same template share nothing writable.
type renderRun struct {
	engine   *Engine
	template *Template
	request  *RenderRequest
	archive  *internal.Archive
	values   map[string]string
	kept     []keptSlide
	warnings []Warning
	state    RenderState
}

func (e *Engine) newRenderRun(t *Template, req *RenderRequest) *renderRun {
	return &renderRun{
		engine:   e,
		template: t,
		request:  req,
		state:    StateLoaded,
	}
}

// run drives the pipeline through its states. A failure in any stage
// aborts the whole render; no partial deck is ever returned.
func (r *renderRun) run(ctx context.Context) (*RenderResult, error) {
	if err := r.resolve(); err != nil {
		return nil, r.fail(err)
	}
	if err := r.cancelled(ctx); err != nil {
		return nil, r.fail(err)
	}
	if err := r.filter(); err != nil {
		return nil, r.fail(err)
	}
	if err := r.cancelled(ctx); err != nil {
		return nil, r.fail(err)
	}
	if err := r.substitute(); err != nil {
		return nil, r.fail(err)
	}
	if err := r.cancelled(ctx); err != nil {
		return nil, r.fail(err)
	}
	result, err := r.serialize()
	if err != nil {
		return nil, r.fail(err)
	}
	return result, nil
}

func (r *renderRun) fail(err error) error {
	r.state = StateFailed
	return err
}

func (r *renderRun) cancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return NewCancelledError(err)
	}
	return nil
}

// resolve validates the request against the catalog and opens the
// working copy. Resolution runs first so a bad request aborts before
// any package work happens.
func (r *renderRun) resolve() error {
	values, err := resolveValues(r.engine.catalog, r.request, r.engine.config)
	if err != nil {
		return err
	}
	r.values = values

	archive, err := internal.OpenArchive(r.template.source, r.engine.logger)
	if err != nil {
		return templateError(err)
	}
	r.archive = archive
	r.engine.logger.Debug(LogMsgValuesResolved, zap.Int(LogFieldPlaceholders, len(values)))
	return nil
}

// filter walks the slides in deck order, keeps the ones whose tags
// evaluate to true, and removes the rest from the working package.
func (r *renderRun) filter() error {
	removed := 0
	for i, ref := range r.template.refs {
		info := r.template.slides[i]
		if EvaluateTags(info.Tags, r.request.SlideToggles) {
			r.kept = append(r.kept, keptSlide{ref: ref, info: info})
			continue
		}
		if err := r.dropSlide(ref); err != nil {
			return err
		}
		removed++
	}
	r.state = StateFiltered
	r.engine.logger.Debug(LogMsgSlidesFiltered,
		zap.Int(LogFieldSlideCount, len(r.kept)),
		zap.Int(LogFieldRemoved, removed))
	return nil
}

// dropSlide removes one slide and its satellite parts from the working
// package: the slide list entry, the presentation relationship, the
// content type overrides, the slide part with its rels, and the notes
// part with its rels.
func (r *renderRun) dropSlide(ref internal.SlideRef) error {
	presXML, err := r.archive.Part(internal.PartPresentation)
	if err != nil {
		return templateError(err)
	}
	presXML, _ = internal.RemoveSlideEntry(presXML, ref.RelID)
	r.archive.SetPart(internal.PartPresentation, presXML)

	relsXML, err := r.archive.Part(internal.PartPresentationRels)
	if err != nil {
		return templateError(err)
	}
	relsXML, _ = internal.RemoveRelationship(relsXML, ref.RelID)
	r.archive.SetPart(internal.PartPresentationRels, relsXML)

	r.removePartWithRels(ref.PartName)
	if notesName, ok := r.template.notes[ref.PartName]; ok {
		r.removePartWithRels(notesName)
	}
	return nil
}

// removePartWithRels drops a part together with its rels part and its
// content type override.
func (r *renderRun) removePartWithRels(partName string) {
	r.archive.RemovePart(partName)
	relsName := internal.RelsPartFor(partName)
	if r.archive.HasPart(relsName) {
		r.archive.RemovePart(relsName)
	}
	if ctXML, err := r.archive.Part(internal.PartContentTypes); err == nil {
		if out, ok := internal.RemoveContentTypeOverride(ctXML, partName); ok {
			r.archive.SetPart(internal.PartContentTypes, out)
		}
	}
}

// substitute rewrites the text of every kept slide and of its notes.
// Notes also lose their tag markers here, so the delivered deck shows
// no trace of the gating syntax.
func (r *renderRun) substitute() error {
	for _, slide := range r.kept {
		if err := r.substituteInto(slide.info.PartName, slide.info.Index, false); err != nil {
			return err
		}
		if notesName, ok := r.template.notes[slide.info.PartName]; ok {
			if err := r.substituteInto(notesName, slide.info.Index, true); err != nil {
				return err
			}
		}
	}
	r.state = StateSubstituted
	r.engine.logger.Debug(LogMsgTextSubstituted, zap.Int(LogFieldWarnings, len(r.warnings)))
	return nil
}

func (r *renderRun) substituteInto(partName string, slide int, stripMarkers bool) error {
	part, err := r.archive.Part(partName)
	if err != nil {
		return templateError(err)
	}
	out, unresolved, changed := substitutePart(part, r.values, r.engine.tokens, stripMarkers)
	if changed {
		r.archive.SetPart(partName, out)
	}
	for _, token := range unresolved {
		r.warnings = append(r.warnings, Warning{Token: token, Part: partName, Slide: slide})
		r.engine.logger.Warn(LogMsgUnresolvedToken,
			zap.String(LogFieldToken, token),
			zap.String(LogFieldPart, partName))
	}
	return nil
}

// serialize writes the working package to memory and assembles the
// result. No file is ever touched.
func (r *renderRun) serialize() (*RenderResult, error) {
	var buf bytes.Buffer
	if _, err := r.archive.WriteTo(&buf); err != nil {
		return nil, NewSerializeError(err)
	}
	r.state = StateSerialized
	return &RenderResult{
		Document:   buf.Bytes(),
		Filename:   BuildFilename(r.engine.config.filenamePrefix, r.request.CompanyName),
		SlideCount: len(r.kept),
		Warnings:   r.warnings,
	}, nil
}
