// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render assembles a draft into the Markdown print view of the
// proposal document.
package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

// Document renders the full proposal, chapter by chapter, in the layout
// of the original print view. Empty fields are skipped; diagram fields
// are emitted as fenced mermaid blocks with their figure captions.
func Document(draft types.Draft) string {
	f := draft.Fields
	var b strings.Builder

	// Cover.
	writeHeading(&b, 1, strings.ToUpper(orPlaceholder(f["judul"], "[JUDUL]")))
	writePara(&b, "PROPOSAL PERANCANGAN SISTEM")
	writePara(&b, strings.ToUpper(orPlaceholder(f["penulis"], "[NAMA]")))
	if f["nim"] != "" {
		writePara(&b, "NIM: "+f["nim"])
	}
	writePara(&b, strings.ToUpper(orPlaceholder(f["prodi"], "[PRODI]")))
	writePara(&b, strings.ToUpper(orPlaceholder(f["instansi"], "[INSTANSI]")))
	writePara(&b, f["tahun"])

	// BAB 1.
	writeHeading(&b, 2, "BAB 1 PENDAHULUAN")
	for _, key := range []string{
		"bab1_par1_tekno", "bab1_par2_topik", "bab1_par3_objek",
		"bab1_par4_solusi", "bab1_par5_metode", "bab1_par6_penutup",
	} {
		writePara(&b, f[key])
	}

	// BAB 2.
	writeHeading(&b, 2, "BAB 2 TINJAUAN PUSTAKA")
	writePara(&b, f["bab2_intro"])
	writeHeading(&b, 3, "2.1 Kajian Pustaka")
	writeHeading(&b, 4, "2.1.1 Perancangan")
	writePara(&b, f["bab2_1_1_perancangan"])
	writeHeading(&b, 4, "2.1.2 Sistem Informasi")
	writePara(&b, f["bab2_1_2_si"])
	writeHeading(&b, 4, "2.1.3 Teori Objek Studi")
	writePara(&b, f["bab2_1_3_objek_teori"])
	writeHeading(&b, 4, "2.1.4 Metode Perancangan (UML)")
	writePara(&b, f["bab2_1_4_uml_intro"])
	writeHeading(&b, 5, "a. Use Case Diagram")
	writePara(&b, f["bab2_1_4_usecase"])
	writeDiagram(&b, f["uml_usecase_diagram"], "Gambar 2.1 Use Case Diagram Sistem")
	writeHeading(&b, 5, "b. Activity Diagram")
	writePara(&b, f["bab2_1_4_activity"])
	writeDiagram(&b, f["uml_activity_diagram"], "Gambar 2.2 Activity Diagram Sistem")
	writeHeading(&b, 5, "c. Class Diagram")
	writePara(&b, f["bab2_1_4_class"])
	writeDiagram(&b, f["uml_class_diagram"], "Gambar 2.3 Class Diagram Sistem")
	writeHeading(&b, 4, "2.1.5 Metode Pengembangan Sistem")
	writePara(&b, f["bab2_1_5_metode_pengembangan"])
	writeHeading(&b, 3, "2.2 Pembahasan Objek")
	writePara(&b, f["bab2_2_pembahasan_objek"])
	writeHeading(&b, 3, "2.3 Penelitian Terdahulu")
	writePara(&b, f["bab2_3_penelitian_terdahulu"])
	writeHeading(&b, 3, "2.4 Tahapan Perancangan")
	writePara(&b, f["bab2_4_tahapan"])
	writeHeading(&b, 3, "2.5 Jadwal Perancangan")
	writeSchedule(&b, draft.Schedule)

	// BAB 3.
	writeHeading(&b, 2, "BAB 3 HASIL DAN PERANCANGAN")
	writeHeading(&b, 3, "3.1 Hasil")
	writeHeading(&b, 4, "3.1.1 Analisis Masalah")
	writePara(&b, f["bab3_1_1_analisis_masalah"])
	writeHeading(&b, 4, "3.1.2 Metode Pengumpulan Data")
	writePara(&b, f["bab3_1_2_metode_pengumpulan"])
	writeHeading(&b, 3, "3.2 Perancangan")
	writeHeading(&b, 4, "3.2.1 Flowchart")
	writePara(&b, f["bab3_2_1_flowchart_desc"])
	writeDiagram(&b, f["bab3_2_1_flowchart_user"], "Gambar 3.1 Flowchart Alur User")
	writeDiagram(&b, f["bab3_2_1_flowchart_admin"], "Gambar 3.2 Flowchart Alur Admin")
	writeHeading(&b, 4, "3.2.2 ERD (Entity Relationship Diagram)")
	writePara(&b, f["erd_desc"])
	writeDiagram(&b, f["erd_diagram"], "Gambar 3.3 Entity Relationship Diagram")
	writeHeading(&b, 4, "3.2.3 Analisis Kebutuhan")
	writeHeading(&b, 5, "a. Kebutuhan Fungsional")
	writePara(&b, f["bab3_2_2_fungsional"])
	writeHeading(&b, 5, "b. Kebutuhan Non-Fungsional")
	writePara(&b, f["bab3_2_2_non_fungsional"])
	writeHeading(&b, 5, "c. Analisis Hardware")
	writePara(&b, f["bab3_2_2_hardware"])
	writeHeading(&b, 5, "d. Analisis Software")
	writePara(&b, f["bab3_2_2_software"])

	// BAB 4.
	writeHeading(&b, 2, "BAB 4 KESIMPULAN DAN SARAN")
	writeHeading(&b, 3, "4.1 Kesimpulan")
	writePara(&b, f["bab4_1_kesimpulan"])
	writeHeading(&b, 3, "4.2 Saran")
	writePara(&b, f["bab4_2_saran"])

	// Back matter.
	writeHeading(&b, 2, "DAFTAR PUSTAKA")
	writePara(&b, f["daftar_pustaka"])
	writeHeading(&b, 2, "LAMPIRAN")
	writeHeading(&b, 3, "Lampiran 1: Draf Pertanyaan Wawancara")
	writePara(&b, f["lampiran_draf_wawancara"])
	writeHeading(&b, 3, "Lampiran 2: Hasil Wawancara")
	writePara(&b, f["lampiran_hasil_wawancara"])
	writeHeading(&b, 3, "Lampiran 3: Dokumentasi")
	writePara(&b, f["lampiran_dokumentasi"])
	writeHeading(&b, 3, "Lampiran 4: Surat Izin Observasi")
	writePara(&b, f["lampiran_surat"])

	return b.String()
}

func writeHeading(b *strings.Builder, level int, text string) {
	b.WriteString(strings.Repeat("#", level))
	b.WriteString(" ")
	b.WriteString(text)
	b.WriteString("\n\n")
}

func writePara(b *strings.Builder, text string) {
	if text == "" {
		return
	}
	b.WriteString(text)
	b.WriteString("\n\n")
}

// writeDiagram emits a fenced mermaid block with an italic figure
// caption below it, matching the print view.
func writeDiagram(b *strings.Builder, source, caption string) {
	if source == "" {
		return
	}
	b.WriteString("```mermaid\n")
	b.WriteString(strings.TrimRight(source, "\n"))
	b.WriteString("\n```\n\n")
	fmt.Fprintf(b, "*%s*\n\n", caption)
}

func writeSchedule(b *strings.Builder, schedule []types.ScheduleEntry) {
	if len(schedule) == 0 {
		return
	}
	b.WriteString("| No | Kegiatan | M1 | M2 | M3 | M4 |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, e := range schedule {
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s | %s |\n",
			e.ID, e.Activity, mark(e.M1), mark(e.M2), mark(e.M3), mark(e.M4))
	}
	b.WriteString("\n")
}

func mark(set bool) string {
	if set {
		return "✓"
	}
	return ""
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
