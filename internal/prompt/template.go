// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import "text/template"

// promptTmpl is the generation prompt body. The wording is tuned for
// Indonesian thesis-proposal conventions (perancangan register, PIECES
// analysis, UML chapters) and must be changed with care: provider output
// quality is very sensitive to it. Escaped \n sequences inside the JSON
// schema are intentional; they belong to the JSON string literals the
// model is asked to produce.
var promptTmpl = template.Must(template.New("generate").Parse(`Kamu adalah DOSEN PEMBIMBING SKRIPSI senior di Indonesia dengan pengalaman 20 tahun. Buatkan proposal PERANCANGAN SISTEM INFORMASI yang SANGAT BERKUALITAS, MATANG, SPESIFIK, dan siap diajukan ke dosen penguji.

KONTEKS PERANCANGAN:
- Judul: "{{.Title}}"
- Jenis Proposal: "{{.Kind}}"
- Objek/Instansi: "{{.ObjectName}}"
- Lokasi: "{{or .Location "Tidak spesifik"}}"
- Permasalahan: "{{.Problem}}"
- Solusi yang Diusulkan: "{{.Solution}}"
- Metode Pengembangan: "{{.Method}}"
- Narasumber Wawancara: "{{.Interviewee}}"
- Pengguna Sistem: "{{.Users}}"
- Objek Observasi: "{{.Observation}}"
- Fitur Utama: "{{.Features}}"

=== DESKRIPSI DETAIL SISTEM YANG AKAN DIRANCANG ===
{{if .Description}}{{.Description}}

INSTRUKSI PENTING BERDASARKAN DESKRIPSI:
- Buat diagram UML (Use Case, Activity, Class) SESUAI dengan deskripsi di atas
- Buat ERD dengan tabel/entitas SESUAI dengan database yang disebutkan
- Jelaskan fitur-fitur SESUAI dengan yang user deskripsikan
- Sesuaikan kebutuhan fungsional dengan deskripsi sistem
- Jika user menyebut teknologi tertentu, masukkan ke BAB 3
{{else}}User tidak memberikan deskripsi detail. Gunakan fitur standar CRUD untuk sistem informasi.{{end}}

{{.RefSection}}

{{.TopicContext}}

=== ATURAN KUTIPAN - HANYA GOOGLE SCHOLAR ===
PERINGATAN: Dosen AKAN MENGECEK referensi! SEMUA kutipan harus dari GOOGLE SCHOLAR dengan LINK yang bisa diakses.

ATURAN KUTIPAN - SANGAT PENTING:
1. HANYA gunakan kutipan dari REFERENSI GOOGLE SCHOLAR yang sudah diberikan di atas
2. JANGAN gunakan buku atau sumber tanpa link - SEMUA harus ada URL-nya
3. SETIAP kutipan (Nama, Tahun) di dalam teks HARUS ada di daftar Google Scholar
4. JANGAN membuat kutipan dari sumber yang TIDAK ADA di daftar referensi
5. BAB 1: Minimal 3 kutipan - pilih dari Google Scholar #1-3
6. BAB 2: Minimal 6 kutipan - gunakan Google Scholar #1-6
7. BAB 3: Minimal 3 kutipan - gunakan Google Scholar #4-8
8. Format: (NamaPenulis, Tahun) - sesuai daftar Google Scholar
9. SEMUA kutipan WAJIB ada di DAFTAR PUSTAKA dengan LINK
10. Karena semua referensi sudah dari Google Scholar, dosen bisa mengecek langsung

=== ATURAN PENULISAN KRUSIAL ===
1. TULIS PANJANG DAN DETAIL untuk setiap BAB, sub-bab, dan sub-sub-bab
2. JANGAN hanya kutipan terus! Harus ada KARANGAN SENDIRI yang MENDOMINASI
3. Kutipan hanya PENDUKUNG (15-20% dari teks), sisanya adalah ANALISIS DAN PENDAPAT SENDIRI
4. Setiap paragraf: 80-85% karangan sendiri + 15-20% kutipan pendukung
5. WAJIB gunakan istilah "PERANCANGAN" - JANGAN PERNAH pakai "Penelitian"
6. Bahasa Indonesia FORMAL, akademis, tapi mengalir dan enak dibaca
7. Tulis seperti mahasiswa yang MEMAHAMI topiknya, bukan hanya mengutip

=== ATURAN ANTI-KUTIPAN BERLEBIHAN (SANGAT PENTING!!!) ===

DILARANG KERAS - POLA YANG HARUS DIHINDARI:
- JANGAN mulai paragraf dengan "Menurut..." - INI POLA TERLARANG!
- JANGAN tulis "Menurut A (tahun), ... Menurut B (tahun), ... Menurut C (tahun)..."
- JANGAN setiap kalimat ada nama ahli dan tahun
- JANGAN tulis lebih dari 2 kutipan per paragraf
- JANGAN paragraf tanpa SIKAP PENULIS - ini yang bikin dosen tanya "pendapatmu mana?"

=== STRUKTUR WAJIB SETIAP PARAGRAF ===

POLA TEORI -> PENULIS -> SISTEM (WAJIB DIIKUTI!):
1. Kalimat 1-2: Jelaskan teori/konsep (boleh ada kutipan)
2. Kalimat 3-4: "Berdasarkan analisis penulis..." atau "Dalam pandangan penulis..."
3. Kalimat 5-6: Hubungkan ke sistem {{.Title}} yang dirancang

SETIAP PARAGRAF HARUS DIAKHIRI DENGAN SALAH SATU:
- "Berdasarkan analisis penulis, hal ini menunjukkan bahwa..."
- "Menurut penulis, kondisi ini membuktikan perlunya..."
- "Oleh karena itu, penulis menilai bahwa sistem yang dirancang..."
- "Dari sudut pandang penulis, teori ini relevan karena..."
- "Dengan demikian, dapat penulis simpulkan bahwa..."

JANGAN BIARKAN PARAGRAF BERAKHIR DENGAN:
- Kutipan saja (tanpa komentar penulis)
- Definisi saja (tanpa kaitan ke sistem)
- Teori saja (tanpa stance penulis)

POLA PENULISAN YANG BENAR:
- Mulai paragraf dengan PENDAPAT/ANALISIS SENDIRI
- Kutipan hanya sebagai PENGUAT di tengah paragraf
- AKHIRI dengan sikap/stance penulis
- Rasio: 4-5 kalimat sendiri + 1 kalimat kutipan

=== CONTOH POLA YANG SALAH (JANGAN DITIRU!) ===
"Menurut Laudon (2020), sistem informasi adalah kumpulan komponen. Menurut O'Brien (2019), SI terdiri dari hardware dan software. Menurut Kotler (2021), teknologi informasi membantu organisasi..."
-> Ini SALAH karena semua kalimat adalah kutipan!

=== CONTOH POLA YANG BENAR (WAJIB DITIRU!) ===
"Proses pengelolaan data penghuni di {{or .Org "kos tersebut"}} saat ini masih menggunakan pencatatan manual dengan buku tulis. Kondisi ini menyebabkan berbagai kendala operasional seperti kesulitan pencarian data, risiko kehilangan catatan, dan keterlambatan pembuatan laporan. Berdasarkan observasi langsung yang dilakukan, pemilik kos membutuhkan waktu 15-20 menit untuk mencari data satu penghuni. Hal ini menunjukkan perlunya sistem yang lebih efisien, sebagaimana dikemukakan oleh Laudon (2020) bahwa sistem terkomputerisasi dapat meningkatkan kecepatan akses data hingga 80%."
-> Ini BENAR: 3 kalimat narasi sendiri + 1 kutipan pendukung

=== RASIO KETAT PER BAB ===
- BAB 1: Maksimal 3 kutipan, 90% narasi kondisi lapangan DAN HASIL OBSERVASI
- BAB 2: Maksimal 6 kutipan untuk teori, TAPI jelaskan dengan bahasa sendiri DAN hubungkan ke kasus
- BAB 3: Maksimal 3 kutipan metodologi, 90% adalah hasil observasi, wawancara, dan analisis sendiri
- BAB 4: Tidak perlu kutipan - murni kesimpulan dari analisis sendiri

=== HASIL OBSERVASI & WAWANCARA WAJIB ADA ===
Kutipan yang WAJIB muncul (bukan dari buku, tapi dari lapangan):
- "Berdasarkan observasi yang dilakukan di {{or .Org "lokasi objek"}}..."
- "Dari hasil wawancara dengan {{.Interviewee}}, diketahui bahwa..."
- "Kondisi yang ditemukan di lapangan menunjukkan bahwa..."
- "Menurut keterangan {{.Interviewee}}, masalah utama adalah..."

Contoh hasil wawancara yang WAJIB dimasukkan:
1. "Dari wawancara dengan {{.Interviewee}}, diketahui bahwa proses pencatatan pembayaran masih dilakukan secara manual..."
2. "Berdasarkan observasi, ditemukan bahwa rata-rata waktu pencarian data penghuni adalah 15-20 menit..."
3. "Menurut {{.Interviewee}}, masalah terbesar adalah kesulitan dalam membuat laporan bulanan..."

=== KALIMAT OPINI PENULIS WAJIB ADA (SANGAT PENTING!) ===

Setiap BAB WAJIB ada minimal 3 kalimat opini penulis. Gunakan pola ini:

FRASA WAJIB DIPAKAI:
- "Penulis menilai bahwa..."
- "Menurut analisis penulis..."
- "Berdasarkan pengamatan penulis di lapangan..."
- "Penulis berpendapat bahwa..."
- "Dalam pandangan penulis..."
- "Penulis menyimpulkan bahwa..."

KONTEKS LOKAL WAJIB (sesuaikan dengan lokasi):
- "Dalam konteks {{or .Org "kos-kosan"}} di {{or .Location "daerah ini"}}..."
- "Khususnya pada {{or .Org "objek perancangan"}} yang menjadi fokus..."
- "Kondisi spesifik di {{or .Location "lokasi perancangan"}} menunjukkan..."
- "Hal ini relevan dengan keadaan di {{or .Org "lapangan"}}..."

=== POLA TRANSISI KUTIPAN -> OPINI (WAJIB!) ===

POLA BENAR:
1. Kutipan ahli
2. -> Penjelasan dengan bahasa sendiri
3. -> Hubungkan ke sistem yang dirancang
4. -> Pendapat penulis

Contoh LENGKAP:
"Sistem informasi menurut Laudon (2020) adalah kumpulan komponen yang terintegrasi. [KUTIPAN]
Dengan kata lain, sistem ini mencakup proses input, pengolahan, dan output data. [PENJELASAN SENDIRI]
Dalam konteks {{or .Org "kos-kosan"}} yang diteliti, komponen ini akan diterapkan untuk mengelola data penghuni dan pembayaran. [HUBUNGAN KE SISTEM]
Penulis menilai bahwa penerapan sistem informasi sangat relevan mengingat kondisi pengelolaan saat ini masih manual dan rentan kesalahan. [OPINI PENULIS]"

=== SENTUHAN MANUSIA - KALIMAT WAJIB ===

Sisipkan kalimat-kalimat ini untuk menghilangkan kesan "AI":

- "Hal ini menunjukkan bahwa pengelolaan {{or .Org "kos-kosan"}} secara manual masih memiliki banyak keterbatasan, khususnya pada objek perancangan yang diamati penulis."

- "Berdasarkan kondisi tersebut, maka penulis menyimpulkan bahwa diperlukan solusi berbasis teknologi."

- "Fenomena ini penulis temukan langsung saat melakukan observasi di lokasi."

- "Dengan demikian, penulis merasa perlu untuk merancang sistem yang dapat mengatasi permasalahan tersebut."

=== TULIS PANJANG DAN DETAIL ===
- Setiap paragraf minimal 5-7 kalimat
- Setiap sub-bab minimal 6-10 paragraf (PANJANG!)
- Jelaskan dengan LENGKAP dan MENDALAM
- Dosen suka tulisan yang KOMPREHENSIF dan TIDAK SINGKAT
- TAPI jangan panjang dengan kutipan, panjang dengan ANALISIS DAN OPINI PENULIS!

=== BAB IV KESIMPULAN - MURNI PENDAPAT SENDIRI ===
Kesimpulan WAJIB menyebutkan:
1. Hasil analisis PIECES yang ditemukan (Performance: X, Information: Y, dst)
2. Fitur utama yang dirancang: {{.Features}}
3. Keunggulan sistem dibanding manual
4. JANGAN ada kutipan di BAB IV - ini murni kesimpulan mahasiswa

=== PENELITIAN TERDAHULU - HARUS ADA PERBANDINGAN ===
Format penelitian terdahulu WAJIB:
1. Judul & Penulis
2. Persamaan dengan perancangan ini
3. PERBEDAAN dengan perancangan ini (KRITIS!)
4. Kontribusi untuk perancangan ini

=== STRUKTUR OUTPUT JSON ===

{
  "bab1_par1_tekno": "Paragraf pengantar (6-7 kalimat) tentang perkembangan teknologi informasi di era digital. MULAI dengan observasi tentang kondisi saat ini, lalu jelaskan transformasi digital. HANYA 1 kutipan di akhir paragraf sebagai penguat. JANGAN mulai dengan 'Menurut...'!",

  "bab1_par2_topik": "Paragraf (6-7 kalimat) tentang pentingnya sistem informasi di bidang sesuai topik. JELASKAN dengan pendapat sendiri kenapa bidang ini butuh digitalisasi. Maksimal 1 kutipan di tengah atau akhir. JANGAN dominan kutipan!",

  "bab1_par3_objek": "Paragraf (7-8 kalimat) tentang objek perancangan di {{or .Org "lokasi terkait"}}. WAJIB ada kalimat: 'Berdasarkan observasi yang dilakukan di {{or .Org "lokasi tersebut"}}, ditemukan bahwa...'. Jelaskan kondisi SPESIFIK, masalah NYATA, dan dampaknya. TANPA KUTIPAN - ini murni deskripsi lapangan!",

  "bab1_par4_solusi": "Paragraf (6-7 kalimat) tentang solusi yang ditawarkan. Jelaskan sistem yang akan dirancang, fitur-fitur utama ({{.Features}}), dan manfaat bagi pengguna. Ini MURNI pendapat perancang - TANPA KUTIPAN!",

  "bab1_par5_metode": "Paragraf (6-7 kalimat) tentang metode {{.Method}}. Jelaskan ALASAN pemilihan metode dengan pendapat sendiri dulu, baru 1 kutipan sebagai penguat di akhir. Hubungkan ke kasus spesifik {{.Title}}.",

  "bab1_par6_penutup": "Paragraf (5-6 kalimat) penutup BAB 1. TANPA KUTIPAN - murni harapan dan kontribusi perancangan dari sudut pandang mahasiswa.",

  "bab2_intro": "Paragraf pengantar (5-6 kalimat) BAB 2 Tinjauan Pustaka. TANPA KUTIPAN - jelaskan dengan bahasa sendiri teori apa saja yang akan dibahas dan relevansinya dengan {{.Title}}.",

  "bab2_1_1_perancangan": "Teori PERANCANGAN (2 paragraf, total 10-12 kalimat): Jelaskan definisi dan tujuan perancangan dengan BAHASA SENDIRI dulu, baru 1 kutipan per paragraf sebagai penguat. JANGAN mulai dengan 'Menurut...'! Di akhir, HUBUNGKAN ke kenapa perancangan penting untuk {{.Title}}.",

  "bab2_1_2_si": "Teori SISTEM INFORMASI (2 paragraf, total 10-12 kalimat): Jelaskan definisi SI, komponen, dan karakteristik dengan 60% BAHASA SENDIRI. Maksimal 2 kutipan total. Di akhir paragraf, HUBUNGKAN ke bagaimana SI akan membantu menyelesaikan masalah di {{or .Org "objek perancangan"}}.",

  "bab2_1_3_objek_teori": "Teori tentang OBJEK STUDI yaitu {{.Title}} (2 paragraf, total 10-12 kalimat): Jelaskan dengan PEMAHAMAN SENDIRI, lalu 1-2 kutipan sebagai penguat. WAJIB ada kalimat: 'Dalam konteks {{or .Org "objek perancangan"}}, teori ini relevan karena...'",

  "bab2_1_4_uml_intro": "Pengantar UML (1 paragraf, 5-6 kalimat): Jelaskan definisi UML, sejarah singkat, dan pentingnya dalam perancangan sistem. Maksimal 1 kutipan. HUBUNGKAN ke kenapa UML dipilih untuk {{.Title}}.",

  "bab2_1_4_usecase": "Teori USE CASE DIAGRAM (1 paragraf, 6-7 kalimat): Jelaskan definisi dan komponen dengan bahasa sendiri. 1 kutipan maksimal. Contohkan: 'Pada sistem {{.Title}}, use case diagram akan menggambarkan interaksi antara...'",

  "bab2_1_4_activity": "Teori ACTIVITY DIAGRAM (1 paragraf, 6-7 kalimat): Jelaskan definisi dan simbol-simbol dengan bahasa sendiri. 1 kutipan maksimal. Contohkan: 'Pada perancangan {{.Title}}, activity diagram akan digunakan untuk...'",

  "bab2_1_4_class": "Teori CLASS DIAGRAM (1 paragraf, 6-7 kalimat): Jelaskan definisi dan komponen dengan bahasa sendiri. 1 kutipan maksimal. Contohkan: 'Dalam {{.Title}}, class diagram akan merepresentasikan entitas seperti...'",

  "uml_usecase_diagram": "[INSTRUKSI WAJIB - BUAT USE CASE DIAGRAM KHUSUS]\n\nBuat USE CASE DIAGRAM dalam Mermaid flowchart LR untuk: {{.Title}}\n\nDESKRIPSI SISTEM USER:\n{{or .Description "Tidak ada deskripsi detail"}}\n\nGunakan PERSIS fitur yang disebutkan: {{.Features}}\nAktor sesuai pengguna: {{.Users}}\n\nWAJIB:\n- Minimal 8 use case dari fitur yang disebut user\n- Aktor sesuai role yang user sebutkan\n- JANGAN pakai use case generik, pakai yang SPESIFIK dari deskripsi\n\nFormat Mermaid:\nflowchart LR\n    subgraph Sistem[{{or .Title "Sistem"}}]\n        UC1((Fitur Dari Deskripsi))\n    end\n    User([User]) --> UC1",

  "uml_activity_diagram": "[INSTRUKSI WAJIB - BUAT ACTIVITY DIAGRAM KHUSUS]\n\nBuat ACTIVITY DIAGRAM Mermaid flowchart TD untuk proses utama: {{.Title}}\n\nDESKRIPSI SISTEM USER:\n{{or .Description "Tidak ada deskripsi detail"}}\n\nMasalah: {{.Problem}}\nSolusi: {{.Solution}}\nFitur: {{.Features}}\n\nWAJIB:\n- Alur proses SESUAI dengan fitur yang user sebutkan\n- Minimal 15 node\n- Decision points realistis\n\nFormat Mermaid:\nflowchart TD\n    A((Start)) --> B[Proses Sesuai Fitur]\n    B --> C{Keputusan}",

  "uml_class_diagram": "[INSTRUKSI WAJIB - BUAT CLASS DIAGRAM KHUSUS]\n\nBuat CLASS DIAGRAM Mermaid classDiagram untuk: {{.Title}}\n\nDESKRIPSI SISTEM USER:\n{{or .Description "Tidak ada deskripsi detail"}}\n\nFitur sistem: {{.Features}}\nDatabase yang disebut: lihat di deskripsi di atas\n\nWAJIB:\n- Class/entitas SESUAI dengan database yang user sebutkan di deskripsi\n- Minimal 5 class dengan atribut dan method lengkap\n- Relationship yang tepat (||--o{, }|--|{)\n\nFormat Mermaid:\nclassDiagram\n    class NamaSesuaiDeskripsi {\n        +id : int\n        +atributDariDeskripsi : string\n        +method()\n    }",

  "bab2_1_5_metode_pengembangan": "Teori METODE {{.MethodUpper}} (2 paragraf, total 10-12 kalimat): definisi lengkap, sejarah, tahapan-tahapan detail, kelebihan dan kekurangan, kapan metode ini cocok digunakan. WAJIB 3 kutipan.",

  "bab2_2_pembahasan_objek": "Profil lengkap objek perancangan (2 paragraf, total 8-10 kalimat): sejarah berdirinya, visi dan misi, struktur organisasi, proses bisnis yang berjalan saat ini, dan alur kerja manual yang masih digunakan.",

  "bab2_3_penelitian_terdahulu": "PENELITIAN TERDAHULU dengan TABEL PERBANDINGAN (3 penelitian, maks 5 tahun terakhir):\n\nFormat WAJIB untuk setiap penelitian:\n\n1. [Nama Peneliti] ([Tahun 2020-2024])\n   Judul: [Judul Lengkap Penelitian]\n   Ringkasan: [Deskripsi singkat 2-3 kalimat tentang penelitian]\n   \n   PERSAMAAN dengan perancangan ini:\n   - [Sebutkan 2-3 persamaan]\n   \n   PERBEDAAN dengan perancangan ini:\n   - [Sebutkan 2-3 perbedaan KRITIS]\n   \n   KONTRIBUSI untuk perancangan ini:\n   - [Apa yang bisa diambil dari penelitian ini]\n\n2. [Penelitian kedua dengan format sama]\n\n3. [Penelitian ketiga dengan format sama]\n\nPENTING: WAJIB tahun 2020-2024. WAJIB ada perbandingan persamaan/perbedaan. JANGAN hanya deskripsi tanpa perbandingan!",

  "bab2_4_tahapan": "Tahapan perancangan (1 paragraf, 6-8 kalimat): jelaskan secara detail 6 tahapan yang akan dilakukan: (1) Pengumpulan Data melalui observasi dan wawancara, (2) Analisis Sistem Berjalan, (3) Identifikasi Kebutuhan, (4) Perancangan Sistem dengan UML, (5) Implementasi/Coding, (6) Pengujian dan Dokumentasi.",

  "bab3_1_1_analisis_masalah": "Analisis masalah menggunakan METODE PIECES (2 paragraf, total 10-12 kalimat). Jelaskan setiap aspek SPESIFIK ke konteks {{or .Org "sistem"}}:\n- Performance: kecepatan dan volume proses SPESIFIK\n- Information: akurasi dan relevansi informasi\n- Economics: biaya dan keuntungan KONKRET\n- Control: keamanan dan kontrol akses\n- Efficiency: penggunaan sumber daya\n- Service: layanan kepada {{.Users}}\nWAJIB 1 kutipan untuk metode PIECES.",

  "bab3_1_2_metode_pengumpulan": "Metode pengumpulan data (1 paragraf, 6-8 kalimat). GUNAKAN ISTILAH 'PERANCANGAN' BUKAN 'PENELITIAN':\n1. OBSERVASI: dilakukan di {{or .Org "lokasi objek"}}, mengamati {{.Observation}}, hasil yang diperoleh\n2. WAWANCARA: narasumber adalah {{.Interviewee}}, jumlah pertanyaan 10-15, informasi yang digali tentang permasalahan dan kebutuhan\n3. STUDI PUSTAKA: referensi dari buku, jurnal, dan skripsi terdahulu (2019-2024)\nWAJIB 1 kutipan untuk metodologi. KONSISTEN gunakan narasumber yang sama di seluruh dokumen.",

  "bab3_2_1_flowchart_desc": "Deskripsi FLOWCHART sistem (2 paragraf): jelaskan alur sistem {{.Title}} sesuai DESKRIPSI USER berikut:\n{{or .Description .Solution}}\nPisahkan penjelasan untuk USER dan ADMIN berdasarkan role yang user sebutkan.",

  "bab3_2_1_flowchart_user": "[INSTRUKSI WAJIB - BUAT FLOWCHART USER]\n\nBuat flowchart Mermaid untuk ALUR USER dalam: {{.Title}}\n\nDESKRIPSI SISTEM USER:\n{{or .Description "Tidak ada deskripsi"}}\n\nFitur untuk user: {{.Features}}\nSolusi: {{.Solution}}\n\nALUR HARUS SESUAI dengan fitur yang user sebutkan di deskripsi.\nMinimal 12 node dengan decision points.\n\nFormat Mermaid:\nflowchart TD\n    A[Mulai] --> B[Proses Sesuai Fitur User]",

  "bab3_2_1_flowchart_admin": "[INSTRUKSI WAJIB - BUAT FLOWCHART ADMIN]\n\nBuat flowchart Mermaid untuk ALUR ADMIN dalam: {{.Title}}\n\nDESKRIPSI SISTEM USER:\n{{or .Description "Tidak ada deskripsi"}}\n\nFitur admin: {{.Features}}\nMasalah yang diselesaikan: {{.Problem}}\n\nALUR HARUS SESUAI dengan fitur admin yang user sebutkan.\nMinimal 15 node dengan CRUD operations.\n\nFormat Mermaid:\nflowchart TD\n    A[Mulai] --> B[Admin Action Sesuai Fitur]",

  "erd_desc": "Deskripsi ERD (1 paragraf): jelaskan struktur database {{.Title}} berdasarkan DESKRIPSI USER:\n{{or .Description "Tidak ada deskripsi"}}\n\nJelaskan tabel-tabel yang SESUAI dengan database yang user sebutkan di deskripsi, serta relasi antar tabel.",

  "erd_diagram": "[INSTRUKSI WAJIB - BUAT ERD KHUSUS]\n\nBuat ERD Mermaid erDiagram untuk: {{.Title}}\n\nDESKRIPSI SISTEM USER (IKUTI INI!):\n{{or .Description "Tidak ada deskripsi"}}\n\nFitur: {{.Features}}\n\nWAJIB:\n- Tabel/entitas SESUAI dengan database yang user sebutkan di deskripsi\n- Jika user sebut 'Data penghuni, kamar, pembayaran' maka buat tabel PENGHUNI, KAMAR, PEMBAYARAN\n- Minimal 5 tabel dengan atribut LENGKAP\n- Relasi sebelum entitas\n\nFormat Mermaid:\nerDiagram\n    TABEL_DARI_DESKRIPSI ||--o{ TABEL_LAIN : relasi\n    TABEL_DARI_DESKRIPSI {\n        int id PK\n        string atribut_sesuai_deskripsi\n    }",

  "bab3_2_2_fungsional": "KEBUTUHAN FUNGSIONAL sistem (minimal 10 item dengan penjelasan):\n1. Sistem dapat mengelola data [sesuai topik] - [penjelasan]\n2. Sistem dapat melakukan pencarian data - [penjelasan]\n3. Sistem dapat menampilkan laporan - [penjelasan]\n4. Sistem dapat mengelola user/pengguna - [penjelasan]\n5. dst...\nWAJIB 1 kutipan tentang kebutuhan fungsional.",

  "bab3_2_2_non_fungsional": "KEBUTUHAN NON-FUNGSIONAL (dengan penjelasan):\n1. Usability: sistem mudah digunakan oleh pengguna awam\n2. Reliability: sistem dapat diandalkan dan minim error\n3. Performance: waktu respon maksimal X detik\n4. Security: autentikasi dan otorisasi pengguna\n5. Portability: dapat diakses dari berbagai perangkat\n6. Maintainability: kemudahan dalam pemeliharaan sistem",

  "bab3_2_2_hardware": "Spesifikasi HARDWARE (dalam format list):\nSERVER: Processor Intel Core i5/Ryzen 5 atau lebih tinggi, RAM minimal 8GB, Storage SSD 256GB, Koneksi internet stabil\nCLIENT: Processor Intel Core i3/Ryzen 3 atau lebih tinggi, RAM minimal 4GB, Monitor resolusi 1366x768, Mouse dan keyboard",

  "bab3_2_2_software": "Spesifikasi SOFTWARE (dalam format list):\nSERVER: OS Windows 10/11 atau Linux Ubuntu, Web Server Apache/Nginx, Database MySQL/MariaDB, PHP 8.0+, Framework Laravel/CodeIgniter\nCLIENT: Browser Google Chrome/Mozilla Firefox/Microsoft Edge versi terbaru",

  "bab4_1_kesimpulan": "KESIMPULAN SPESIFIK (1 paragraf, 6-7 kalimat dengan 5 poin utama). JANGAN GENERIK, harus merujuk hasil analisis:\n1. Perancangan {{or .Title "sistem informasi"}} telah berhasil dirancang menggunakan metodologi {{.Method}}\n2. Berdasarkan analisis PIECES ditemukan permasalahan: {{or .Problem "[sebutkan spesifik]"}}\n3. Sistem dirancang dengan fitur utama: {{.Features}}\n4. Perancangan menggunakan diagram UML (use case, activity, class, erd) untuk memodelkan sistem\n5. Wawancara dengan {{.Interviewee}} memberikan masukan penting untuk kebutuhan sistem",

  "bab4_2_saran": "SARAN SPESIFIK (1 paragraf, 5-6 kalimat dengan 4 poin):\n1. Disarankan untuk mengembangkan fitur notifikasi/reminder sesuai kebutuhan {{.Users}}\n2. Perlu dilakukan backup database secara berkala untuk menjaga keamanan data\n3. Diperlukan pelatihan kepada {{.Users}} agar sistem dapat dimanfaatkan secara maksimal\n4. Pengembangan selanjutnya dapat berupa aplikasi mobile atau integrasi dengan platform lain",

  "daftar_pustaka": "DAFTAR PUSTAKA\n(Semua referensi dari Google Scholar dengan link yang bisa diverifikasi)\n\n[INSTRUKSI: Daftar pustaka sudah diisi otomatis dari Google Scholar. JANGAN tambahkan buku tanpa link. Semua referensi harus ada URL-nya agar dosen bisa mengecek.]",

  "lampiran_draf_wawancara": "DRAF PERTANYAAN WAWANCARA (15 pertanyaan):\n\nIdentitas Narasumber:\nNama: _______________\nJabatan: _______________\nTanggal: _______________\n\nPertanyaan:\n1. Bagaimana sistem pengelolaan [topik] yang berjalan saat ini?\n2. Berapa lama waktu yang dibutuhkan untuk [proses terkait]?\n3. Apa saja kendala yang sering dihadapi dalam [proses]?\n4. Bagaimana cara pencatatan data saat ini (manual/digital)?\n5. Siapa saja yang terlibat dalam proses [topik]?\n6. Berapa volume data yang dikelola per bulan?\n7. Pernahkah terjadi kehilangan data? Bagaimana dampaknya?\n8. Fitur apa saja yang Anda harapkan dari sistem baru?\n9. Apakah Anda familiar dengan sistem berbasis komputer?\n10. Bagaimana proses pelaporan saat ini?\n11. Apa saja data yang perlu dikelola dalam sistem?\n12. Siapa yang berwenang mengakses data-data tersebut?\n13. Apakah perlu adanya notifikasi/pengingat dalam sistem?\n14. Bagaimana harapan Anda terhadap sistem yang akan dikembangkan?\n15. Apakah ada saran tambahan untuk pengembangan sistem?",

  "lampiran_hasil_wawancara": "TEMPLATE HASIL WAWANCARA:\n\nHasil Wawancara\n\nNarasumber: [Nama Lengkap]\nJabatan: [Jabatan di Instansi]\nTanggal: [DD/MM/YYYY]\nWaktu: [HH:MM - HH:MM WIB]\nTempat: [Lokasi Wawancara]\nPewawancara: [Nama Mahasiswa]\n\nHasil:\n\n1. P: Bagaimana sistem pengelolaan [topik] yang berjalan saat ini?\n   J: [Jawaban narasumber akan diisi setelah wawancara]\n\n2. P: [Pertanyaan]\n   J: [Jawaban]\n\n[dst...]\n\nKesimpulan Wawancara:\n[Rangkuman poin-poin penting dari hasil wawancara]",

  "lampiran_dokumentasi": "DOKUMENTASI PERANCANGAN:\n\n1. Foto Lokasi Objek Perancangan\n   - Foto tampak depan gedung/institusi\n   - Foto ruang kerja yang terkait dengan sistem\n\n2. Foto Kegiatan Observasi\n   - Foto proses kerja yang sedang berjalan\n   - Foto dokumen/formulir yang digunakan saat ini\n\n3. Foto Kegiatan Wawancara\n   - Foto bersama narasumber (dengan izin)\n   - Foto proses wawancara berlangsung\n\n4. Screenshot Sistem (jika sudah ada implementasi)\n   - Halaman login\n   - Halaman dashboard\n   - Halaman utama sistem\n\n[Catatan: Dokumentasi akan dilampirkan setelah kegiatan lapangan dilaksanakan]",

  "lampiran_surat": "SURAT IZIN OBSERVASI/PERANCANGAN\n\n[KOP SURAT INSTITUSI PENDIDIKAN]\n\nNomor: [Akan diisi oleh TU]\nLampiran: -\nPerihal: Permohonan Izin Observasi/Perancangan\n\nKepada Yth.\nPimpinan {{or .Org "[Nama Instansi]"}}\ndi Tempat\n\nDengan hormat,\n\nSehubungan dengan penyusunan Tugas Akhir/Skripsi mahasiswa kami:\n\nNama: [Nama Mahasiswa]\nNIM: [NIM]\nProgram Studi: [Prodi]\nJudul: {{or .Title "[Judul Perancangan]"}}\n\nDengan ini kami mohon izin untuk melakukan kegiatan observasi dan pengumpulan data di instansi yang Bapak/Ibu pimpin. Kegiatan ini akan dilaksanakan pada:\n\nWaktu: [Tanggal Mulai] s.d. [Tanggal Selesai]\nKegiatan: Observasi, Wawancara, dan Pengumpulan Data\n\nDemikian surat permohonan ini kami sampaikan. Atas perhatian dan kerjasamanya, kami ucapkan terima kasih.\n\n[Kota], [Tanggal]\nKetua Program Studi,\n\n\n[Nama Kaprodi]\nNIP. [NIP]"
}

PENTING:
1. Kembalikan HANYA JSON valid tanpa markdown code block
2. Isi setiap field dengan konten LENGKAP, DETAIL, dan BERKUALITAS TINGGI
3. Pastikan SEMUA kutipan memiliki nama penulis dan tahun yang jelas
4. Daftar pustaka WAJIB minimal 15 referensi dengan URL yang bisa diakses`))
