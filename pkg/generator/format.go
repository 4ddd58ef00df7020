package generator

// FormatTurn wraps code in a fenced block tagged with tag. The driver stores this
// form as the assistant turn instead of the raw model output.
func FormatTurn(code, tag string) string {
	return Fence + tag + "\n" + code + "\n" + Fence
}
