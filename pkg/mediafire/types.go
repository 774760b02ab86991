package mediafire

import "strconv"

// RefKind distinguishes the two kinds of share links.
type RefKind string

// Share link kinds.
const (
	RefFile   RefKind = "file"
	RefFolder RefKind = "folder"
)

// Ref identifies one remotely hosted file or folder, parsed from a share
// link. A Ref is immutable; invalid input never yields a partial Ref.
type Ref struct {
	Kind RefKind
	Key  string
}

// FileInfo is the remote metadata of a single file. Filename is untrusted
// and must be sanitized before use as a path component.
type FileInfo struct {
	Filename          string
	Hash              string
	Size              int64
	NormalDownloadURL string
}

// FolderRef is a subfolder entry in a folder listing.
type FolderRef struct {
	Key  string
	Name string
}

// FolderPage is one page of a remote folder listing. Pages of one folder are
// concatenated in fetch order until MoreChunks is false.
type FolderPage struct {
	Files      []FileInfo
	Folders    []FolderRef
	MoreChunks bool
}

// Raw API response shapes. The MediaFire API encodes sizes and booleans as
// strings.

type rawFileInfo struct {
	Filename string `json:"filename"`
	Hash     string `json:"hash"`
	Size     string `json:"size"`
	Links    struct {
		NormalDownload string `json:"normal_download"`
	} `json:"links"`
}

func (r rawFileInfo) toFileInfo() FileInfo {
	size, _ := strconv.ParseInt(r.Size, 10, 64)
	return FileInfo{
		Filename:          r.Filename,
		Hash:              r.Hash,
		Size:              size,
		NormalDownloadURL: r.Links.NormalDownload,
	}
}

type rawFolderRef struct {
	FolderKey string `json:"folderkey"`
	Name      string `json:"name"`
}

type fileInfoResponse struct {
	Response struct {
		FileInfo          rawFileInfo `json:"file_info"`
		CurrentAPIVersion string      `json:"current_api_version"`
	} `json:"response"`
}

type folderContentResponse struct {
	Response struct {
		FolderContent struct {
			Files      []rawFileInfo  `json:"files"`
			Folders    []rawFolderRef `json:"folders"`
			MoreChunks string         `json:"more_chunks"`
		} `json:"folder_content"`
		CurrentAPIVersion string `json:"current_api_version"`
	} `json:"response"`
}

type folderInfoResponse struct {
	Response struct {
		FolderInfo struct {
			Name string `json:"name"`
		} `json:"folder_info"`
		CurrentAPIVersion string `json:"current_api_version"`
	} `json:"response"`
}
