package telegram

const (
	msgStart = "👋 Selamat datang di *Univio*!\n\n" +
		"Tempel pesan dosen atau pengumuman kelas, dan saya akan menyusun:\n" +
		"• 📝 draf tugas (judul, mata kuliah, deadline, prioritas)\n" +
		"• 📅 draf jadwal kuliah (hari, jam, ruang)\n\n" +
		"_Contoh: \"Kumpulkan laporan praktikum jaringan komputer paling lambat 15 Desember 2025 pukul 23:59\"_"

	msgHelp = "*Cara pakai:*\n\n" +
		"Kirim teks bebas. Pesan yang menyebut tugas, deadline atau submit dibaca sebagai tugas; " +
		"pesan yang menyebut jadwal, kelas atau kuliah dibaca sebagai jadwal.\n\n" +
		"Jadwal harus menyebut hari (Senin sampai Minggu)."

	msgUnknown   = "🤔 Saya belum bisa memastikan apakah ini tugas atau jadwal. Coba sebutkan kata seperti *tugas*, *deadline*, *jadwal* atau *kelas*."
	msgNoWeekday = "⚠️ Jadwal tidak menyebut hari. Tambahkan hari (misalnya *Senin*) lalu kirim ulang."
	msgNoTask    = "⚠️ Informasi tugas belum cukup. Silakan isi formulir secara manual."
	msgFailed    = "Terjadi kesalahan saat memproses pesan. Silakan coba lagi."
)
