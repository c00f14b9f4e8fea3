package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// testContainerXML is a well-formed META-INF/container.xml pointing at the OPF.
const testContainerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

// fullMetadataOPF declares every metadata field the converter copies, plus a
// three-chapter spine. The manifest is deliberately listed out of spine
// order so tests can tell the two apart.
const fullMetadataOPF = `<?xml version="1.0" encoding="UTF-8"?>
<package version="2.0" xmlns="http://www.idpf.org/2007/opf" unique-identifier="bookid">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title>A Study in Scarlet</dc:title>
    <dc:title>Alternate Title</dc:title>
    <dc:creator>Arthur Conan Doyle</dc:creator>
    <dc:creator>Second Author</dc:creator>
    <dc:language>en</dc:language>
    <dc:subject>Detective fiction</dc:subject>
    <dc:subject>Mystery</dc:subject>
    <dc:date>1887-11-01</dc:date>
    <dc:description>The first Sherlock Holmes novel.</dc:description>
  </metadata>
  <manifest>
    <item id="chap3" href="chapter3.xhtml" media-type="application/xhtml+xml"/>
    <item id="chap1" href="chapter1.xhtml" media-type="application/xhtml+xml"/>
    <item id="chap2" href="chapter2.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine>
    <itemref idref="chap1"/>
    <itemref idref="chap2"/>
    <itemref idref="chap3"/>
  </spine>
</package>`

// bareOPF has no optional metadata and a one-chapter spine.
const bareOPF = `<?xml version="1.0" encoding="UTF-8"?>
<package version="2.0" xmlns="http://www.idpf.org/2007/opf">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
  </metadata>
  <manifest>
    <item id="only" href="only.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine>
    <itemref idref="only"/>
  </spine>
</package>`

// ghostSpineOPF references a spine item that the manifest never declares.
const ghostSpineOPF = `<?xml version="1.0" encoding="UTF-8"?>
<package version="2.0" xmlns="http://www.idpf.org/2007/opf">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title>Ghost Spine</dc:title>
  </metadata>
  <manifest>
    <item id="chap1" href="chapter1.xhtml" media-type="application/xhtml+xml"/>
    <item id="chap2" href="chapter2.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine>
    <itemref idref="chap1"/>
    <itemref idref="ghost"/>
    <itemref idref="chap2"/>
  </spine>
</package>`

// chapterXHTML wraps body markup in a minimal XHTML document.
func chapterXHTML(body string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<html xmlns="http://www.w3.org/1999/xhtml"><head><title>t</title></head><body>%s</body></html>`, body)
}

// writeEPUB builds an EPUB (ZIP) archive at path from the files map.
// The mimetype entry is written first, as the format requires.
func writeEPUB(t *testing.T, path string, files map[string]string) {
	t.Helper()
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	write := func(name, content string) {
		fw, err := zw.Create(name)
		if err != nil {
			t.Fatalf("writeEPUB: create %s: %v", name, err)
		}
		if _, err := io.WriteString(fw, content); err != nil {
			t.Fatalf("writeEPUB: write %s: %v", name, err)
		}
	}

	write("mimetype", "application/epub+zip")
	for name, content := range files {
		write(name, content)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("writeEPUB: close writer: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writeEPUB: write file: %v", err)
	}
}

// buildTestEPUB writes a complete EPUB with the given OPF and chapter files
// into a temp dir and returns its path.
func buildTestEPUB(t *testing.T, opf string, chapters map[string]string) string {
	t.Helper()
	files := map[string]string{
		"META-INF/container.xml": testContainerXML,
		"OEBPS/content.opf":      opf,
	}
	for name, body := range chapters {
		files["OEBPS/"+name] = chapterXHTML(body)
	}
	path := filepath.Join(t.TempDir(), "test.epub")
	writeEPUB(t, path, files)
	return path
}
