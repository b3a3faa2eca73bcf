package types

// ============================================================================
// Interop Limits
// ============================================================================

const (
	// MaxEnvFieldLen bounds both the key and the value of an environment edit,
	// in bytes. Checked before any process is opened.
	MaxEnvFieldLen = 4095

	// MaxWaitHandles is the most handles a single multi-object wait accepts
	// (MAXIMUM_WAIT_OBJECTS).
	MaxWaitHandles = 64

	// MaxFaceNameLen is the longest font face name, in UTF-16 units, that a
	// LOGFONT or CONSOLE_FONT_INFOEX can carry excluding the terminator.
	MaxFaceNameLen = 31

	// MissingGlyph is the glyph index GetGlyphIndicesW reports for a code
	// point the font cannot render.
	MissingGlyph = 0xFFFF
)
