package entities

// Asset represents one expected or discovered release artifact
type Asset struct {
	Name    string // formatted base name, e.g. "Xray-linux-amd64"
	Archive string // archive filename, e.g. "Xray-linux-amd64.zip"
	Digest  string // digest companion filename, e.g. "Xray-linux-amd64.zip.dgst"
	Path    string // filesystem path when discovered on disk
}
