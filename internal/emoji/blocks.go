package emoji

import "unicode"

// Block is a named, read-only set of emoji-related code points. Blocks may
// overlap (regional indicators sit inside the enclosed alphanumeric
// supplement); attribution of a removed rune goes to the first matching block
// in declaration order.
type Block struct {
	Name  string
	Table *unicode.RangeTable
}

var (
	miscPictographs = &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}},
	}

	supplementalPictographs = &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}},
	}

	emoticons = &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}},
	}

	transportMap = &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}},
	}

	miscSymbols = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x2600, Hi: 0x26FF, Stride: 1}},
	}

	dingbats = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x2700, Hi: 0x27BF, Stride: 1}},
	}

	enclosedAlphanumeric = &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: 0x1F100, Hi: 0x1F1FF, Stride: 1}},
	}

	enclosedIdeographic = &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: 0x1F200, Hi: 0x1F2FF, Stride: 1}},
	}

	geometricShapesExt = &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: 0x1F780, Hi: 0x1F7FF, Stride: 1}},
	}

	pictographsExtA = &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: 0x1FA00, Hi: 0x1FA6F, Stride: 1}},
	}

	pictographsExtB = &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}},
	}

	regionalIndicators = &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}},
	}

	keycap = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x20E3, Hi: 0x20E3, Stride: 1}},
	}

	zeroWidthJoiner = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x200D, Hi: 0x200D, Stride: 1}},
	}

	variationSelectors = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1}},
	}

	skinToneModifiers = &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: 0x1F3FB, Hi: 0x1F3FF, Stride: 1}},
	}

	// Assorted symbols commonly rendered as emoji that live outside the
	// dedicated blocks above: watches, clocks, zodiac, weather, copyright
	// and trademark signs, wavy dashes.
	legacyPictographs = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x00A9, Hi: 0x00A9, Stride: 1},
			{Lo: 0x00AE, Hi: 0x00AE, Stride: 1},
			{Lo: 0x2122, Hi: 0x2122, Stride: 1},
			{Lo: 0x231A, Hi: 0x231B, Stride: 1},
			{Lo: 0x23E9, Hi: 0x23EC, Stride: 1},
			{Lo: 0x23F0, Hi: 0x23F0, Stride: 1},
			{Lo: 0x23F3, Hi: 0x23F3, Stride: 1},
			{Lo: 0x25FD, Hi: 0x25FE, Stride: 1},
			{Lo: 0x2614, Hi: 0x2615, Stride: 1},
			{Lo: 0x2648, Hi: 0x2653, Stride: 1},
			{Lo: 0x267F, Hi: 0x267F, Stride: 1},
			{Lo: 0x2693, Hi: 0x2693, Stride: 1},
			{Lo: 0x26A1, Hi: 0x26A1, Stride: 1},
			{Lo: 0x26AA, Hi: 0x26AB, Stride: 1},
			{Lo: 0x26BD, Hi: 0x26BE, Stride: 1},
			{Lo: 0x26C4, Hi: 0x26C5, Stride: 1},
			{Lo: 0x26CE, Hi: 0x26CE, Stride: 1},
			{Lo: 0x26D4, Hi: 0x26D4, Stride: 1},
			{Lo: 0x26EA, Hi: 0x26EA, Stride: 1},
			{Lo: 0x26F2, Hi: 0x26F3, Stride: 1},
			{Lo: 0x26F5, Hi: 0x26F5, Stride: 1},
			{Lo: 0x26FA, Hi: 0x26FA, Stride: 1},
			{Lo: 0x26FD, Hi: 0x26FD, Stride: 1},
			{Lo: 0x2705, Hi: 0x2705, Stride: 1},
			{Lo: 0x2728, Hi: 0x2728, Stride: 1},
			{Lo: 0x274C, Hi: 0x274C, Stride: 1},
			{Lo: 0x274E, Hi: 0x274E, Stride: 1},
			{Lo: 0x2753, Hi: 0x2755, Stride: 1},
			{Lo: 0x2795, Hi: 0x2797, Stride: 1},
			{Lo: 0x27B0, Hi: 0x27B0, Stride: 1},
			{Lo: 0x27BF, Hi: 0x27BF, Stride: 1},
			{Lo: 0x2B50, Hi: 0x2B50, Stride: 1},
			{Lo: 0x2B55, Hi: 0x2B55, Stride: 1},
			{Lo: 0x3030, Hi: 0x3030, Stride: 1},
			{Lo: 0x303D, Hi: 0x303D, Stride: 1},
		},
		LatinOffset: 2,
	}
)

// DefaultBlocks returns the full block set in attribution order. The slice is
// freshly allocated on each call so callers can reorder or filter it without
// affecting others.
func DefaultBlocks() []Block {
	return []Block{
		{Name: "misc-pictographs", Table: miscPictographs},
		{Name: "supplemental-pictographs", Table: supplementalPictographs},
		{Name: "emoticons", Table: emoticons},
		{Name: "transport-map", Table: transportMap},
		{Name: "misc-symbols", Table: miscSymbols},
		{Name: "dingbats", Table: dingbats},
		{Name: "enclosed-alphanumeric", Table: enclosedAlphanumeric},
		{Name: "enclosed-ideographic", Table: enclosedIdeographic},
		{Name: "geometric-shapes-ext", Table: geometricShapesExt},
		{Name: "pictographs-ext-a", Table: pictographsExtA},
		{Name: "pictographs-ext-b", Table: pictographsExtB},
		{Name: "regional-indicators", Table: regionalIndicators},
		{Name: "keycap", Table: keycap},
		{Name: "zero-width-joiner", Table: zeroWidthJoiner},
		{Name: "variation-selectors", Table: variationSelectors},
		{Name: "skin-tone-modifiers", Table: skinToneModifiers},
		{Name: "legacy-pictographs", Table: legacyPictographs},
	}
}

var allTables = func() []*unicode.RangeTable {
	blocks := DefaultBlocks()
	tables := make([]*unicode.RangeTable, len(blocks))
	for i, b := range blocks {
		tables[i] = b.Table
	}
	return tables
}()

// IsEmoji reports whether r falls in any designated emoji block. It is total
// over all runes and has no side effects.
func IsEmoji(r rune) bool {
	return unicode.In(r, allTables...)
}
