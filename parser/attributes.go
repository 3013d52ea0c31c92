package parser

// ParseAttributeMap collects every attribute of the current opening tag.
// It never warns; later occurrences of a name replace earlier ones.
func ParseAttributeMap(c *Cursor) (AttributeMap, error) {
	var attrs AttributeMap

	for {
		tok, err := c.NextAttribute()
		if err != nil {
			return nil, err
		}

		if tok == nil {
			return attrs, nil
		}

		attrs.Set(tok.Local, tok.Value)
	}
}

// ParseNoAttributes consumes the attributes of a tag that accepts none,
// recording [WarningUnexpectedAttribute] for each.
func ParseNoAttributes(c *Cursor) (struct{}, error) {
	for {
		tok, err := c.NextAttribute()
		if err != nil || tok == nil {
			return struct{}{}, err
		}

		c.AddWarning(WarningUnexpectedAttribute, tok.Loc, WarnName(tok.Local))
	}
}

// WarnUnknownAttribute records [WarningUnexpectedAttribute] for tok, listing
// the names the element does recognise.
func WarnUnknownAttribute(c *Cursor, tok *AttributeToken, known ...string) {
	c.AddWarning(WarningUnexpectedAttribute, tok.Loc, WarnName(tok.Local, known...))
}
