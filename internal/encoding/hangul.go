package encoding

// HangulSymbols is the built-in alphabet: 128 common, easy to pronounce Hangul
// syllables grouped by initial consonant. The order is part of the wire format.
var HangulSymbols = [Base]string{
	// ㄱ
	"가", "간", "강", "개", "거", "고", "공", "구", "금",
	// ㄴ
	"나", "날", "남", "내", "너", "노", "눈", "늘", "니",
	// ㄷ
	"다", "달", "담", "대", "더", "도", "동", "두", "드",
	// ㄹ
	"라", "람", "랑", "래", "러", "로", "루", "리", "림",
	// ㅁ
	"마", "만", "말", "매", "머", "모", "무", "문", "미",
	// ㅂ
	"바", "반", "방", "배", "보", "봄", "부", "비", "빈",
	// ㅅ
	"사", "산", "상", "새", "서", "선", "소", "송", "수", "시",
	// ㅇ
	"아", "안", "양", "어", "연", "영", "오", "온", "우", "이",
	// ㅈ
	"자", "잔", "장", "재", "저", "조", "주", "중", "지",
	// ㅊ
	"차", "찬", "창", "채", "천", "초", "춘", "충", "치",
	// ㅋ
	"카", "칸", "코", "쿠", "크", "키", "캐", "케", "콩",
	// ㅌ
	"타", "탄", "태", "터", "토", "통", "투", "트", "티",
	// ㅍ
	"파", "판", "패", "포", "풍", "프", "피", "팔", "품",
	// ㅎ
	"하", "한", "해", "허", "호", "홍", "화", "후", "히",
}
