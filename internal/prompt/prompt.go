// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt compiles a proposal generation prompt from the user's
// input and the aggregated Google Scholar references. Compilation is
// pure: the same input and references always produce the same prompt.
package prompt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

// citation budget per chapter. Chapter four is cited from the writer's
// own analysis only, so it gets no references at all.
const (
	maxCitationsBab1 = 3
	maxCitationsBab2 = 6
	maxCitationsBab3 = 3
)

// promptData is the view model for the generation prompt template. All
// defaults are resolved here so the template stays declarative.
type promptData struct {
	Title        string
	Problem      string
	Solution     string
	Method       string
	MethodUpper  string
	Org          string
	Kind         string
	ObjectName   string
	Location     string
	Interviewee  string
	Users        string
	Observation  string
	Features     string
	Description  string
	RefSection   string
	TopicContext string
}

// Compile renders the full generation prompt for the given input and
// reference list. An empty reference list switches the citation section
// to the minimal-citation fallback.
func Compile(input types.ProposalInput, refs []types.ReferenceEntry) (string, error) {
	method := string(input.Method)
	if method == "" {
		method = string(types.MethodWaterfall)
	}

	general := input.GeneralTopic()

	kind := "KHUSUS untuk: " + input.Organization
	objectName := input.Organization
	interviewee := input.Interviewee
	if general {
		kind = "UMUM (seluruh kos di daerah)"
		objectName = "Kos-kosan di daerah " + orElse(input.Location, "setempat")
		if interviewee == "" {
			interviewee = "Penghuni kos"
		}
	} else if interviewee == "" {
		interviewee = "Pemilik kos"
	}

	data := promptData{
		Title:        input.Title,
		Problem:      input.Problem,
		Solution:     input.Solution,
		Method:       method,
		MethodUpper:  strings.ToUpper(method),
		Org:          input.Organization,
		Kind:         kind,
		ObjectName:   objectName,
		Location:     input.Location,
		Interviewee:  interviewee,
		Users:        orElse(input.Users, "Admin dan User"),
		Observation:  orElse(input.Observation, "Proses yang akan diotomasi"),
		Features:     orElse(input.Features, "Fitur CRUD dasar"),
		Description:  input.SystemDescription,
		RefSection:   referenceSection(input, refs),
		TopicContext: topicContext(input),
	}

	var buf bytes.Buffer
	if err := promptTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering generation prompt: %w", err)
	}
	return buf.String(), nil
}

func orElse(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// referenceSection renders the strict-citation block when references
// exist, and the minimal-citation fallback when the aggregation came
// back empty.
func referenceSection(input types.ProposalInput, refs []types.ReferenceEntry) string {
	if len(refs) == 0 {
		return `TIDAK ADA REFERENSI DARI GOOGLE SCHOLAR.
Gunakan kutipan MINIMAL dan fokus pada narasi analisis penulis.
Jika harus mengutip, gunakan format: "(Penulis, Tahun)" dengan referensi umum.`
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== REFERENSI WAJIB DARI GOOGLE SCHOLAR ===\n")
	fmt.Fprintf(&b, "Total %d sumber yang SUDAH DIVERIFIKASI.\n\n", len(refs))
	b.WriteString("DAFTAR REFERENSI UNTUK KUTIPAN:\n")
	for i, r := range refs {
		fmt.Fprintf(&b, "[%d] %s (%s). %q. %s.\n", i+1, r.Author, r.Year, r.Title, r.Publisher)
	}

	exampleAuthor := orElse(firstAuthor(refs[0].Author), "Penulis")
	exampleYear := orElse(refs[0].Year, "2022")

	fmt.Fprintf(&b, `
ATURAN KUTIPAN KETAT:
- HANYA GUNAKAN referensi dari daftar di atas!
- JANGAN membuat/mengarang kutipan baru yang tidak ada di daftar!
- Format kutipan: "(Nama, Tahun)" - contoh: (%s, %s)
- Atau format: "[nomor]" - contoh: [1], [2], dst.
- Semua kutipan HARUS ADA di Daftar Pustaka!

DISTRIBUSI KUTIPAN PER BAB:
- BAB 1: Gunakan referensi [1]-[3] untuk teknologi dan SI (Max %d kutipan)
- BAB 2: Gunakan referensi [1]-[6] untuk tinjauan pustaka (Max %d kutipan)
- BAB 3: Gunakan referensi [4]-[8] untuk metodologi (Max %d kutipan)
- BAB 4: TANPA KUTIPAN - murni kesimpulan penulis

CONTOH KUTIPAN YANG BENAR:
"Sistem informasi adalah kumpulan komponen yang terintegrasi (%s, %s). Penulis menilai bahwa definisi ini relevan dengan %s."

CONTOH KUTIPAN YANG SALAH (JANGAN DITIRU!):
"Menurut Laudon (2020)..." <- SALAH jika Laudon tidak ada di daftar referensi!`,
		exampleAuthor, exampleYear,
		maxCitationsBab1, maxCitationsBab2, maxCitationsBab3,
		exampleAuthor, exampleYear, input.Title)
	return b.String()
}

func firstAuthor(author string) string {
	name, _, _ := strings.Cut(author, ",")
	return strings.TrimSpace(name)
}

// topicContext frames the proposal around one named institution, or a
// whole category of locations when no institution was given.
func topicContext(input types.ProposalInput) string {
	if input.GeneralTopic() {
		return fmt.Sprintf(`=== PROPOSAL TOPIK UMUM ===
- FOKUS: Seluruh kos-kosan di daerah %s
- NARASUMBER: Penghuni kos (bukan pemilik kos)
- OBSERVASI: Berbagai kos di daerah tersebut
- WAWANCARA: Penghuni kos yang mengalami masalah langsung
- PENULISAN: Gunakan frasa "kos-kosan di daerah X", "penghuni kos umumnya", "berdasarkan survei ke beberapa kos"
- JANGAN sebut nama kos spesifik
- Narasumber adalah PENGHUNI KOS, bukan pemilik`, orElse(input.Location, "penelitian"))
	}
	return fmt.Sprintf(`=== PROPOSAL TOPIK KHUSUS ===
- FOKUS: Satu kos spesifik yaitu %[1]s
- NARASUMBER: Pemilik kos %[1]s
- OBSERVASI: Proses di %[1]s saja
- WAWANCARA: Pemilik/pengelola kos
- PENULISAN: Sebutkan nama %[1]q secara konsisten
- Narasumber adalah PEMILIK KOS, karena fokus 1 kos`, input.Organization)
}
