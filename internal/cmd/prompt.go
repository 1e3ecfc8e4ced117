package cmd

// AIPrompt 交给 AI 的占位符保护提示词。
// 建议用户把脱敏后的文档交给 AI 处理前，先把这段话放在对话最前面。
const AIPrompt = "【重要指令】本文档中形如 [MASK_XXXXXXXX] 的标记是敏感信息占位符，" +
	"由脱敏系统自动生成。处理本文档时必须遵守：\n" +
	"1. 严禁修改、翻译、解释或删除任何 [MASK_XXXXXXXX] 标记；\n" +
	"2. 将每个标记视为不可分割的词语，原样保留在输出中；\n" +
	"3. 仅对标记以外的正常文字执行你的任务。\n" +
	"违反上述规则将导致解密失败。"
