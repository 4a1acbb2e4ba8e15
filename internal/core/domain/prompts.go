package domain

// Built-in prompts. Prompt stores fall back to these when a file is missing.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const (
	DefaultSystemPrompt = `你是一位精通易经的专业易学老师，擅长解读卦象，分析吉凶，给出专业的指导和建议。`

	DefaultQuestionPrompt = `我通过金钱起卦法，得到%s，%s我占问的是关于%s的困惑。请从易学专业的角度答疑解惑，分析卦象含义，解读吉凶，并给出相应的建议。`

	DefaultDisclaimer = `免责声明：本算法仅用于易学课题研究与学习目的，所提供的解读结果仅供参考，不构成任何形式的专业建议。用户不应将本解读作为人生重大决策的唯一依据，也不应用于商业用途、医疗诊断、法律咨询或其他专业领域。本系统不对因使用解读结果而导致的任何直接或间接损失承担责任。请用户理性看待解读结果，并在做出重要决策时咨询相关专业人士的意见。本系统不支持任何形式的迷信活动，不应被用于违反法律法规或公序良俗的目的。如有任何问题欢迎联系作者WY 谢谢。`
)
