package webm

import "github.com/deepch/webm/ebml"

// Chapters lists the segment's chapter editions.
type Chapters struct {
	node *ebml.Node
}

func newChapters(n *ebml.Node) Chapters { return Chapters{node: n} }

// Node returns the underlying element tree.
func (c Chapters) Node() *ebml.Node { return c.node }

func (c Chapters) EditionEntries() []EditionEntry {
	return subViews(c.node, ebml.ElementEditionEntry, newEditionEntry)
}

// EditionEntry is one independent chapter list.
type EditionEntry struct {
	node *ebml.Node
}

func newEditionEntry(n *ebml.Node) EditionEntry { return EditionEntry{node: n} }

// Node returns the underlying element tree.
func (e EditionEntry) Node() *ebml.Node { return e.node }

func (e EditionEntry) ChapterAtoms() []ChapterAtom {
	return subViews(e.node, ebml.ElementChapterAtom, newChapterAtom)
}

// ChapterAtom marks one chapter's start point.
type ChapterAtom struct {
	node *ebml.Node
}

func newChapterAtom(n *ebml.Node) ChapterAtom { return ChapterAtom{node: n} }

// Node returns the underlying element tree.
func (c ChapterAtom) Node() *ebml.Node { return c.node }

func (c ChapterAtom) UID() (uint64, error) {
	return uintField(c.node, ebml.ElementChapterUID)
}

func (c ChapterAtom) StringUID() (string, bool, error) {
	return optTextField(c.node, ebml.ElementChapterStringUID)
}

// StartTime is the chapter start in nanoseconds.
func (c ChapterAtom) StartTime() (uint64, error) {
	return uintField(c.node, ebml.ElementChapterTimeStart)
}

func (c ChapterAtom) Displays() []ChapterDisplay {
	return subViews(c.node, ebml.ElementChapterDisplay, newChapterDisplay)
}

// ChapterDisplay is one localized rendering of a chapter name.
type ChapterDisplay struct {
	node *ebml.Node
}

func newChapterDisplay(n *ebml.Node) ChapterDisplay { return ChapterDisplay{node: n} }

// Node returns the underlying element tree.
func (c ChapterDisplay) Node() *ebml.Node { return c.node }

// Text is the chapter name shown to the user.
func (c ChapterDisplay) Text() (string, error) {
	return textField(c.node, ebml.ElementChapString)
}

func (c ChapterDisplay) Languages() ([]string, error) {
	return textValues(c.node, ebml.ElementChapLanguage)
}
