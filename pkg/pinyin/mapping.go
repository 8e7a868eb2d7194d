package pinyin

// overrides maps common Han characters to the syllable or English word used
// for them in identifiers. It takes precedence over the full pinyin table, so
// characters that carry a stable meaning in embedded code (温, 压, 值, ...)
// come out as that meaning instead of their reading.
var overrides = map[rune]string{
	// Numbers
	'零': "zero", '一': "yi", '二': "er", '三': "san", '四': "si",
	'五': "wu", '六': "liu", '七': "qi", '八': "ba", '九': "jiu", '十': "shi",

	// Verbs
	'开': "kai", '关': "guan", '启': "qi", '停': "ting", '动': "dong",
	'静': "jing", '始': "shi", '终': "zhong", '入': "ru", '出': "chu",
	'上': "shang", '下': "xia", '左': "zuo", '右': "you", '前': "qian",
	'后': "hou", '中': "zhong", '增': "zeng", '减': "jian", '加': "jia",
	'乘': "cheng", '除': "chu", '读': "du", '写': "xie",
	'发': "fa", '收': "shou", '送': "song", '接': "jie", '传': "chuan",
	'输': "shu", '存': "cun", '取': "qu", '查': "cha", '检': "jian",
	'测': "ce", '试': "shi", '置': "zhi", '设': "she", '配': "pei",

	// Nouns
	'值': "value", '数': "number", '量': "count", '率': "rate", '度': "degree",
	'温': "temperature", '湿': "humidity", '压': "pressure", '速': "speed",
	'力': "force", '光': "light", '声': "sound", '电': "electric",
	'流': "current", '阻': "resistance", '容': "capacity",
	'感': "sensor", '器': "device", '机': "machine", '表': "table",
	'计': "counter", '时': "time", '钟': "clock", '秒': "second",
	'分': "minute", '日': "day", '月': "month", '年': "year",
	'位': "bit", '字': "word", '节': "byte", '段': "segment",
	'块': "block", '页': "page", '行': "line", '列': "column",
	'队': "queue", '栈': "stack", '链': "link", '树': "tree",
	'图': "graph", '网': "network", '系': "system", '统': "system",

	// Status adjectives
	'高': "high", '低': "low", '大': "big", '小': "small",
	'长': "long", '短': "short", '宽': "wide", '窄': "narrow",
	'快': "fast", '慢': "slow", '新': "new", '旧': "old",
	'好': "good", '坏': "bad", '正': "positive", '负': "negative",
	'有': "has", '无': "no", '空': "empty", '满': "full",
	'真': "true", '假': "false", '是': "yes", '否': "no",
	'成': "success", '败': "fail", '对': "correct", '错': "error",

	// Colors
	'红': "red", '橙': "orange", '黄': "yellow", '绿': "green",
	'青': "cyan", '蓝': "blue", '紫': "purple", '黑': "black",
	'白': "white", '灰': "gray",

	// Directions
	'东': "east", '南': "south", '西': "west", '北': "north",
	'内': "inner", '外': "outer", '顶': "top", '底': "bottom",

	// Other
	'当': "dang", '主': "main", '次': "sub", '总': "total",
	'平': "ping", '均': "average", '最': "most", '初': "init",
	'末': "end", '首': "first", '尾': "last", '单': "single",
	'双': "double", '多': "multi", '少': "few", '全': "all",
	'半': "half", '部': "part", '整': "whole",
}
