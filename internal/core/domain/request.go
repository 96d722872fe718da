package domain

// CompileRequest names a file to compile. When SourceText is set the file is
// virtual and its content is taken from SourceText instead of disk.
type CompileRequest struct {
	// FilePath is absolute or relative to the project root.
	FilePath   string
	SourceText *string
}

// RealFile returns a request whose content is read from disk.
func RealFile(filePath string) CompileRequest {
	return CompileRequest{FilePath: filePath}
}

// VirtualFile returns a request whose content is supplied by the caller.
func VirtualFile(filePath, sourceText string) CompileRequest {
	return CompileRequest{FilePath: filePath, SourceText: &sourceText}
}

// IsVirtual reports whether the request carries its own source text.
func (r CompileRequest) IsVirtual() bool {
	return r.SourceText != nil
}
