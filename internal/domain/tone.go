package domain

type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
	ToneUrgent       Tone = "urgent"
)

func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneFriendly, ToneFormal, ToneCasual, ToneUrgent:
		return true
	default:
		return false
	}
}
