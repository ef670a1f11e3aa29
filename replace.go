package revis

// ReplaceAll rewrites every match of the pattern in text according to
// template, using the matcher's standard expansion syntax ($0, $1, $name,
// ${name}). An empty pattern returns text unchanged rather than splicing
// the template between every character.
func (p *Pattern) ReplaceAll(text, template string) string {
	if p.source == "" {
		return text
	}
	return p.matcher.ReplaceAllString(text, template)
}

// ReplaceAllLiteral rewrites every match with template taken literally, no
// expansion.
func (p *Pattern) ReplaceAllLiteral(text, template string) string {
	if p.source == "" {
		return text
	}
	return p.matcher.ReplaceAllLiteralString(text, template)
}
