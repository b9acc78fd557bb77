// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package proposal holds the document field model: the fixed set of
// proposal sections, the activity schedule, and draft file round-trips.
package proposal

import "github.com/pdiddy/proposal-engine/pkg/types"

// FieldKeys lists every document field in render order. The set is
// fixed; provider output for keys outside this list is dropped.
var FieldKeys = []string{
	"judul",
	"penulis",
	"nim",
	"prodi",
	"instansi",
	"tahun",

	"bab1_par1_tekno",
	"bab1_par2_topik",
	"bab1_par3_objek",
	"bab1_par4_solusi",
	"bab1_par5_metode",
	"bab1_par6_penutup",

	"bab2_intro",
	"bab2_1_1_perancangan",
	"bab2_1_2_si",
	"bab2_1_3_objek_teori",
	"bab2_1_4_uml_intro",
	"bab2_1_4_usecase",
	"bab2_1_4_activity",
	"bab2_1_4_class",
	"uml_usecase_diagram",
	"uml_activity_diagram",
	"uml_class_diagram",
	"erd_diagram",
	"bab2_1_5_metode_pengembangan",
	"bab2_2_pembahasan_objek",
	"bab2_3_penelitian_terdahulu",
	"bab2_4_tahapan",

	"bab3_1_1_analisis_masalah",
	"bab3_1_2_metode_pengumpulan",
	"bab3_2_1_flowchart_desc",
	"bab3_2_1_flowchart_user",
	"bab3_2_1_flowchart_admin",
	"erd_desc",
	"bab3_2_2_fungsional",
	"bab3_2_2_non_fungsional",
	"bab3_2_2_hardware",
	"bab3_2_2_software",

	"bab4_1_kesimpulan",
	"bab4_2_saran",

	"daftar_pustaka",
	"lampiran_draf_wawancara",
	"lampiran_hasil_wawancara",
	"lampiran_dokumentasi",
	"lampiran_surat",
}

var fieldKeySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(FieldKeys))
	for _, k := range FieldKeys {
		set[k] = struct{}{}
	}
	return set
}()

// IsFieldKey reports whether key is one of the known document fields.
func IsFieldKey(key string) bool {
	_, ok := fieldKeySet[key]
	return ok
}

// NewFieldMap returns a field map with every known key present and empty.
func NewFieldMap() map[string]string {
	fields := make(map[string]string, len(FieldKeys))
	for _, k := range FieldKeys {
		fields[k] = ""
	}
	return fields
}

// Merge applies update onto fields. Unknown keys are dropped, then the
// title and institution are pinned back to the user's input so provider
// output can never rewrite them.
func Merge(fields map[string]string, update map[string]string, input types.ProposalInput) {
	for k, v := range update {
		if IsFieldKey(k) {
			fields[k] = v
		}
	}
	fields["judul"] = input.Title
	fields["instansi"] = input.Organization
}
